package domain_test

import (
	"testing"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
		want bool
	}{
		{name: "pending to ordered", from: domain.OrderPending, to: domain.OrderOrdered, want: true},
		{name: "ordered to shipped", from: domain.OrderOrdered, to: domain.OrderShipped, want: true},
		{name: "pending to delivered skips ahead", from: domain.OrderPending, to: domain.OrderDelivered, want: true},
		{name: "no backwards transition", from: domain.OrderShipped, to: domain.OrderOrdered, want: false},
		{name: "no self transition", from: domain.OrderShipped, to: domain.OrderShipped, want: false},
		{name: "settled only via settlement", from: domain.OrderDelivered, to: domain.OrderSettled, want: false},
		{name: "nothing leaves settled", from: domain.OrderSettled, to: domain.OrderDelivered, want: false},
		{name: "unknown status", from: domain.OrderPending, to: domain.OrderStatus("LOST"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, domain.IsValidOrderStatus(domain.OrderPending))
	assert.True(t, domain.IsValidOrderStatus(domain.OrderSettled))
	assert.False(t, domain.IsValidOrderStatus(domain.OrderStatus("UNKNOWN")))
}
