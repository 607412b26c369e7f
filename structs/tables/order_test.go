package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusServed, OrderStatusPaid, OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}

	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("delivered").Valid())
}

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusPreparing},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusPreparing, OrderStatusReady},
		{OrderStatusPreparing, OrderStatusCancelled},
		{OrderStatusReady, OrderStatusServed},
		{OrderStatusServed, OrderStatusPaid},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusReady},
		{OrderStatusPending, OrderStatusServed},
		{OrderStatusPending, OrderStatusPaid},
		{OrderStatusPreparing, OrderStatusPending},
		{OrderStatusPreparing, OrderStatusServed},
		{OrderStatusReady, OrderStatusCancelled},
		{OrderStatusReady, OrderStatusPaid},
		{OrderStatusServed, OrderStatusCancelled},
		{OrderStatusServed, OrderStatusReady},
		{OrderStatusPaid, OrderStatusPending},
		{OrderStatusPaid, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusPreparing},
		{OrderStatusPending, OrderStatusPending},
	}
	for _, tc := range rejected {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusPaid.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())

	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusPreparing.Terminal())
	assert.False(t, OrderStatusReady.Terminal())
	assert.False(t, OrderStatusServed.Terminal())
}
