package auth

import (
	"testing"

	"harvest/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	code := "482913"
	hash, err := hasher.Hash(code)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, code, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(code, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	code := "000731"

	hash, err := hasher.Hash(code)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(code, hash))
	assert.False(t, hasher.Check("000732", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(code, "invalid_hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("123456")
	assert.NoError(t, err)
	second, err := hasher.Hash("123456")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: customCost}})

	hash, err := hasher.Hash("654321")
	assert.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 0}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}
