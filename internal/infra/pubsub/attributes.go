package pubsub

import "harvest/internal/domain/entity"

// eventAttributes are the message attributes subscribers filter and trace on.
func eventAttributes(event *entity.DomainEvent) map[string]string {
	return map[string]string{
		"event_id":     event.ID.String(),
		"event_type":   event.Type,
		"recipient_id": event.RecipientID.String(),
	}
}
