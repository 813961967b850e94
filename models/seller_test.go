package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSellerCanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		target   string
		expected bool
	}{
		{"pending to active", SellerStatusPending, SellerStatusActive, true},
		{"pending to rejected", SellerStatusPending, SellerStatusRejected, true},
		{"active is terminal", SellerStatusActive, SellerStatusRejected, false},
		{"rejected is terminal", SellerStatusRejected, SellerStatusActive, false},
		{"no path back to pending", SellerStatusActive, SellerStatusPending, false},
		{"unknown target", SellerStatusPending, "banned", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seller := &Seller{Status: tt.current}
			assert.Equal(t, tt.expected, seller.CanTransitionTo(tt.target))
		})
	}
}
