package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStatusAvailable(t *testing.T) {
	assert.True(t, ProductStatusAvailable.Available())
	assert.False(t, ProductStatusUnavailable.Available())
	assert.False(t, ProductStatus("sold_out").Available())
}

func TestProductStatusValid(t *testing.T) {
	assert.True(t, ProductStatusAvailable.Valid())
	assert.True(t, ProductStatusUnavailable.Valid())
	assert.False(t, ProductStatus("").Valid())
	assert.False(t, ProductStatus("sold_out").Valid())
}

func TestSetStatusDerivesAvailability(t *testing.T) {
	p := &Product{}

	p.SetStatus(ProductStatusAvailable)
	assert.Equal(t, ProductStatusAvailable, p.Status)
	assert.True(t, p.IsAvailable)

	p.SetStatus(ProductStatusUnavailable)
	assert.Equal(t, ProductStatusUnavailable, p.Status)
	assert.False(t, p.IsAvailable)

	p.SetStatus(ProductStatusAvailable)
	assert.True(t, p.IsAvailable)
}
