package shipping_test

import (
	"testing"

	"github.com/aims-store/order-service/internal/entities"
	"github.com/aims-store/order-service/internal/shipping"
	"github.com/stretchr/testify/assert"
)

func TestBaseFee(t *testing.T) {
	testCases := []struct {
		name     string
		province string
		weight   float64
		want     int64
	}{
		{"hanoi under threshold", "Hà Nội", 0.3, 22_000},
		{"hanoi at threshold", "Hà Nội", 3, 22_000},
		{"hcmc half step above", "TP Hồ Chí Minh", 3.5, 24_500},
		{"hcmc one kg above", "TP Hồ Chí Minh", 4, 27_000},
		{"hanoi partial step rounds up", "Hà Nội", 3.1, 24_500},
		{"province under threshold", "Đà Nẵng", 0.2, 30_000},
		{"province at threshold", "Đà Nẵng", 0.5, 30_000},
		{"province one kg", "Lâm Đồng", 1.0, 32_500},
		{"province partial step rounds up", "Cần Thơ", 0.6, 32_500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shipping.BaseFee(tc.province, tc.weight))
		})
	}
}

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name     string
		province string
		items    []entities.CartItem
		want     entities.ShippingCalculation
	}{
		{
			name:     "regular only, no discount",
			province: "Hà Nội",
			items: []entities.CartItem{
				{ProductID: 1, Price: 50_000, Quantity: 2, Weight: 1.2},
			},
			want: entities.ShippingCalculation{
				RegularShipping:    22_000,
				TotalShipping:      22_000,
				RegularItemsTotal:  100_000,
				HeaviestItemWeight: 1.2,
			},
		},
		{
			name:     "regular subtotal above threshold gets capped discount",
			province: "Hà Nội",
			items: []entities.CartItem{
				{ProductID: 1, Price: 150_000, Quantity: 1, Weight: 2},
			},
			want: entities.ShippingCalculation{
				RegularShipping:      22_000,
				FreeShippingDiscount: 22_000,
				TotalShipping:        0,
				RegularItemsTotal:    150_000,
				HeaviestItemWeight:   2,
			},
		},
		{
			name:     "discount capped at 25000 for heavy order",
			province: "Nghệ An",
			items: []entities.CartItem{
				{ProductID: 1, Price: 500_000, Quantity: 1, Weight: 4},
			},
			want: entities.ShippingCalculation{
				RegularShipping:      47_500,
				FreeShippingDiscount: 25_000,
				TotalShipping:        22_500,
				RegularItemsTotal:    500_000,
				HeaviestItemWeight:   4,
			},
		},
		{
			name:     "rush surcharge regardless of rush subtotal",
			province: "Hà Nội",
			items: []entities.CartItem{
				{ProductID: 1, Price: 10_000, Quantity: 1, Weight: 0.5, RushOrder: true},
			},
			want: entities.ShippingCalculation{
				RushShipping:       32_000,
				TotalShipping:      32_000,
				RushItemsTotal:     10_000,
				HeaviestItemWeight: 0.5,
			},
		},
		{
			name:     "both partitions use global heaviest weight",
			province: "TP Hồ Chí Minh",
			items: []entities.CartItem{
				{ProductID: 1, Price: 50_000, Quantity: 1, Weight: 4},
				{ProductID: 2, Price: 50_000, Quantity: 1, Weight: 0.2, RushOrder: true},
			},
			want: entities.ShippingCalculation{
				RegularShipping:    27_000,
				RushShipping:       37_000,
				TotalShipping:      64_000,
				RegularItemsTotal:  50_000,
				RushItemsTotal:     50_000,
				HeaviestItemWeight: 4,
			},
		},
		{
			name:     "rush subtotal does not unlock the discount",
			province: "Hà Nội",
			items: []entities.CartItem{
				{ProductID: 1, Price: 90_000, Quantity: 1, Weight: 1},
				{ProductID: 2, Price: 900_000, Quantity: 1, Weight: 1, RushOrder: true},
			},
			want: entities.ShippingCalculation{
				RegularShipping:    22_000,
				RushShipping:       32_000,
				TotalShipping:      54_000,
				RegularItemsTotal:  90_000,
				RushItemsTotal:     900_000,
				HeaviestItemWeight: 1,
			},
		},
		{
			name:     "empty cart",
			province: "Hà Nội",
			items:    nil,
			want:     entities.ShippingCalculation{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := shipping.Calculate(tc.province, tc.items)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got.TotalShipping, int64(0))
		})
	}
}
