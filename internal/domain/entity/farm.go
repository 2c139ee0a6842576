// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// FarmStatus is the approval state of a farm.
type FarmStatus string

const (
	FarmStatusPending  FarmStatus = "PENDING"
	FarmStatusApproved FarmStatus = "APPROVED"
	FarmStatusRejected FarmStatus = "REJECTED"
)

// IsValid checks if the FarmStatus is a known value.
func (s FarmStatus) IsValid() bool {
	switch s {
	case FarmStatusPending, FarmStatusApproved, FarmStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an admin may move a farm from s to next.
// Only PENDING farms can be decided; APPROVED and REJECTED are final.
func (s FarmStatus) CanTransitionTo(next FarmStatus) bool {
	return s == FarmStatusPending && (next == FarmStatusApproved || next == FarmStatusRejected)
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinate into an orb point (lon, lat order).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// DistanceKm returns the great-circle distance to other in kilometres.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	return geo.DistanceHaversine(p.Point(), other.Point()) / 1000
}

// Farm is a farmer-owned production site subject to admin approval.
type Farm struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	Name            string     `json:"name"`
	Location        GeoPoint   `json:"location"`
	AreaSize        float64    `json:"area_size"`
	SoilType        string     `json:"soil_type"`
	Status          FarmStatus `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	Rating          float64    `json:"rating"`
	RatingCount     int        `json:"rating_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsApproved reports whether crop and order operations are permitted on the farm.
func (f *Farm) IsApproved() bool {
	return f != nil && f.Status == FarmStatusApproved
}

// FarmWithDistance pairs a farm with its distance from a search origin.
type FarmWithDistance struct {
	Farm       *Farm   `json:"farm"`
	DistanceKm float64 `json:"distance_km"`
}
