package entity

import (
	"time"

	"github.com/google/uuid"
)

// Crop is a reference crop definition from the catalog. The core never mutates it.
type Crop struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

// PlantedCrop is a farm's in-ground or harvested stock of one crop type.
// Quantity is the scarce balance that send-to-store draws down; it never goes below zero.
type PlantedCrop struct {
	ID                   uuid.UUID  `json:"id"`
	FarmID               uuid.UUID  `json:"farm_id"`
	CropID               uuid.UUID  `json:"crop_id"`
	CropName             string     `json:"crop_name"`     // Joined from the catalog on read.
	CropCategory         string     `json:"crop_category"` // Joined from the catalog on read.
	PlantedDate          time.Time  `json:"planted_date"`
	EstimatedHarvestDate time.Time  `json:"estimated_harvest_date"`
	ActualHarvestDate    *time.Time `json:"actual_harvest_date"`
	Quantity             int        `json:"quantity"`
	Available            bool       `json:"available"`
	Status               string     `json:"status"`
	Notes                string     `json:"notes"`
	Version              int64      `json:"version"` // Incremented on every quantity change.
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// HasHarvestOn reports whether the recorded harvest date falls on the same calendar day as date.
func (p *PlantedCrop) HasHarvestOn(date time.Time) bool {
	if p.ActualHarvestDate == nil {
		return false
	}
	y1, m1, d1 := p.ActualHarvestDate.UTC().Date()
	y2, m2, d2 := date.UTC().Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}
