package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotalCents(t *testing.T) {
	items := []OrderItemRequest{
		{ProductName: "Cerveza", Quantity: 2, ProductPriceCents: 500},
		{ProductName: "Tapas", Quantity: 1, ProductPriceCents: 350},
	}

	assert.Equal(t, int64(1350), OrderTotalCents(items))
}

func TestOrderTotalCentsEmpty(t *testing.T) {
	assert.Equal(t, int64(0), OrderTotalCents(nil))
	assert.Equal(t, int64(0), OrderTotalCents([]OrderItemRequest{}))
}

func TestOrderTotalCentsDetectsStalePrices(t *testing.T) {
	// The client total is computed from the prices in the cart; when a price
	// changed since menu render the two sums disagree
	cart := []OrderItemRequest{
		{ProductName: "Cerveza", Quantity: 2, ProductPriceCents: 500},
	}
	currentPriceCents := int64(550)

	assert.NotEqual(t, 2*currentPriceCents, OrderTotalCents(cart))
}
