package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFarmStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, FarmStatusPending.CanTransitionTo(FarmStatusApproved))
	assert.True(t, FarmStatusPending.CanTransitionTo(FarmStatusRejected))
	assert.False(t, FarmStatusPending.CanTransitionTo(FarmStatusPending))
	assert.False(t, FarmStatusApproved.CanTransitionTo(FarmStatusRejected))
	assert.False(t, FarmStatusRejected.CanTransitionTo(FarmStatusApproved))
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	taipei := GeoPoint{Latitude: 25.0330, Longitude: 121.5654}
	kaohsiung := GeoPoint{Latitude: 22.6273, Longitude: 120.3014}

	assert.InDelta(t, 0, taipei.DistanceKm(taipei), 1e-9)
	assert.InDelta(t, 297, taipei.DistanceKm(kaohsiung), 5)
	assert.InDelta(t, taipei.DistanceKm(kaohsiung), kaohsiung.DistanceKm(taipei), 1e-9)
}

func TestFarm_IsApproved(t *testing.T) {
	var nilFarm *Farm
	assert.False(t, nilFarm.IsApproved())
	assert.False(t, (&Farm{Status: FarmStatusPending}).IsApproved())
	assert.True(t, (&Farm{Status: FarmStatusApproved}).IsApproved())
}

func TestPlantedCrop_HasHarvestOn(t *testing.T) {
	harvested := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	crop := &PlantedCrop{}

	assert.False(t, crop.HasHarvestOn(harvested))

	crop.ActualHarvestDate = &harvested
	assert.True(t, crop.HasHarvestOn(time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)))
	assert.False(t, crop.HasHarvestOn(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))
}

func TestProduct_BelongsToFarm(t *testing.T) {
	farmID := uuid.New()

	assert.False(t, (&Product{}).BelongsToFarm(farmID))
	assert.True(t, (&Product{FarmID: &farmID}).BelongsToFarm(farmID))
	assert.False(t, (&Product{FarmID: &farmID}).BelongsToFarm(uuid.New()))
}

func TestActor_Roles(t *testing.T) {
	userID := uuid.New()
	actor := NewActor(userID, []string{"farmer", "bogus"})

	assert.Equal(t, Roles{RoleFarmer}, actor.Roles)
	assert.True(t, actor.HasRole(RoleFarmer))
	assert.False(t, actor.IsAdmin())
	assert.True(t, actor.Owns(userID))
	assert.False(t, actor.Owns(uuid.New()))

	var nobody *Actor
	assert.False(t, nobody.HasRole(RoleAdmin))
	assert.False(t, nobody.Owns(uuid.Nil))
}
