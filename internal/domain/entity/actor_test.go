package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoles(t *testing.T) {
	got := ParseRoles([]string{"Farmer", " consumer ", "root", "farmer", ""})

	assert.Equal(t, Roles{RoleFarmer, RoleConsumer}, got)
}
