package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// EventPublisher defines the interface for publishing domain events to a message queue.
// Publishing is fire-and-forget from the domain's point of view; delivery and retry are external.
type EventPublisher interface {
	// Publish sends a domain event for async processing
	Publish(ctx context.Context, event *entity.DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
