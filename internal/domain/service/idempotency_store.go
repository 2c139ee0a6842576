package service

import (
	"context"
	"time"
)

// IdempotentResponse is a cached HTTP response replayed for a repeated Idempotency-Key.
type IdempotentResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore records in-flight and completed idempotent requests.
type IdempotencyStore interface {
	// Acquire claims key for ttl. It returns false when another request already holds or completed it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Get returns the stored response for key, or nil while the first request is still in flight.
	Get(ctx context.Context, key string) (*IdempotentResponse, error)

	// Save stores the final response for key.
	Save(ctx context.Context, key string, resp *IdempotentResponse, ttl time.Duration) error

	// Release drops the claim on key so the request can be retried.
	Release(ctx context.Context, key string) error
}
