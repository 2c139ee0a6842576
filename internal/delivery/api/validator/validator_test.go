package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "番茄", Quantity: 1}))

	err := v.Validate(&sample{Quantity: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.name failed required")
	assert.Contains(t, err.Error(), "sample.quantity failed gte=1")
}
