// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"harvest/config"
	"harvest/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the CodeHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The cost comes from auth.bcryptCost; an out-of-range value falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.CodeHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor.
func NewBcryptHasherWithCost(cost int) service.CodeHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext code.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	return string(bytes), err
}

// Check compares a plaintext code with a bcrypt hash.
func (h *bcryptHasher) Check(code, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	// err is nil if the code and hash match.
	return err == nil
}
