// Package constants holds string constants shared across layers.
package constants

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Domain event types published on state transitions.
const (
	EventFarmApproved      = "farm.approved"
	EventFarmRejected      = "farm.rejected"
	EventProductListed     = "product.listed"
	EventFarmOrderReady    = "farm_order.ready"
	EventFarmOrderStatus   = "farm_order.status_changed"
	EventOrderAccepted     = "order.accepted"
	EventDeliveryConfirmed = "farm_order.delivered"
)

// Planted crop status values. The field is free-form; these are the values the service writes.
const (
	PlantedCropStatusPlanted   = "planted"
	PlantedCropStatusHarvested = "harvested"
)

// NotificationTopicPrefix prefixes per-user Firebase topics.
const NotificationTopicPrefix = "user-"
