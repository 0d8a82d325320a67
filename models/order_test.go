package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusHappyPath(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusProcessing))
	assert.True(t, OrderStatusProcessing.CanTransition(OrderStatusShipped))
	assert.True(t, OrderStatusShipped.CanTransition(OrderStatusDelivered))
}

func TestOrderStatusNoSkipping(t *testing.T) {
	assert.False(t, OrderStatusPending.CanTransition(OrderStatusShipped))
	assert.False(t, OrderStatusPending.CanTransition(OrderStatusDelivered))
	assert.False(t, OrderStatusProcessing.CanTransition(OrderStatusDelivered))
	// no moving backwards either
	assert.False(t, OrderStatusShipped.CanTransition(OrderStatusProcessing))
	assert.False(t, OrderStatusProcessing.CanTransition(OrderStatusPending))
}

func TestOrderStatusSideExits(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped} {
		assert.True(t, from.CanTransition(OrderStatusCancelled), "from %s", from)
		assert.True(t, from.CanTransition(OrderStatusReturned), "from %s", from)
	}
}

func TestOrderStatusTerminalRejectsAll(t *testing.T) {
	targets := []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned,
	}
	for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned} {
		assert.True(t, from.Terminal())
		for _, to := range targets {
			assert.False(t, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	_, err = ParseOrderStatus("teleported")
	assert.Error(t, err)
}
