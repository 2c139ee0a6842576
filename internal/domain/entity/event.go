package entity

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fire-and-forget notification about a state transition.
type DomainEvent struct {
	ID          uuid.UUID         `json:"id"`
	Type        string            `json:"type"`
	AggregateID uuid.UUID         `json:"aggregate_id"`
	RecipientID uuid.UUID         `json:"recipient_id"` // The user to notify.
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// NewDomainEvent creates an event stamped with a fresh ID and the current time.
func NewDomainEvent(eventType string, aggregateID, recipientID uuid.UUID, title, body string, data map[string]string) *DomainEvent {
	return &DomainEvent{
		ID:          uuid.New(),
		Type:        eventType,
		AggregateID: aggregateID,
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Data:        data,
		OccurredAt:  time.Now().UTC(),
	}
}
