package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmModel mirrors the 'farms' table.
type FarmModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(128);not null"`
	Latitude        float64   `gorm:"not null"`
	Longitude       float64   `gorm:"not null"`
	AreaSize        float64
	SoilType        string  `gorm:"type:varchar(64)"`
	Status          string  `gorm:"type:varchar(16);not null;index"`
	RejectionReason *string `gorm:"type:text"`
	Rating          float64 `gorm:"not null"`
	RatingCount     int     `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}
