// Package shipping computes the storefront shipping fee breakdown.
// All amounts are integer VND.
package shipping

import (
	"math"

	"github.com/aims-store/order-service/internal/entities"
)

const (
	majorCityBaseFee    = 22_000
	majorCityBaseWeight = 3.0

	provinceBaseFee    = 30_000
	provinceBaseWeight = 0.5

	// each started 0.5kg above the base weight costs extra
	stepWeight = 0.5
	stepFee    = 2_500

	rushSurcharge = 10_000

	freeShippingThreshold = 100_000
	freeShippingCap       = 25_000
)

// Calculate partitions the selected items into regular and rush sets and
// returns the full fee breakdown. The base fee for BOTH partitions uses the
// heaviest unit weight across all selected items, not the partition's own
// heaviest item; that is the store's pricing policy. Pure and deterministic.
func Calculate(province string, items []entities.CartItem) entities.ShippingCalculation {
	var calc entities.ShippingCalculation
	var regularCount, rushCount int

	for _, item := range items {
		total := item.Price * int64(item.Quantity)
		if item.RushOrder {
			rushCount++
			calc.RushItemsTotal += total
		} else {
			regularCount++
			calc.RegularItemsTotal += total
		}
		calc.HeaviestItemWeight = math.Max(calc.HeaviestItemWeight, item.Weight)
	}

	base := BaseFee(province, calc.HeaviestItemWeight)

	if regularCount > 0 {
		calc.RegularShipping = base
	}
	if rushCount > 0 {
		calc.RushShipping = base + rushSurcharge
	}

	// the discount never touches the rush component and is capped at the
	// regular component, so the total cannot go negative
	if calc.RegularItemsTotal > freeShippingThreshold {
		calc.FreeShippingDiscount = min(calc.RegularShipping, freeShippingCap)
	}

	calc.TotalShipping = calc.RegularShipping + calc.RushShipping - calc.FreeShippingDiscount
	return calc
}

// BaseFee returns the weight-based fee for one shipment to the province.
// Weight above the base threshold is billed per started 0.5kg unit.
func BaseFee(province string, weight float64) int64 {
	baseFee := int64(provinceBaseFee)
	baseWeight := provinceBaseWeight
	if entities.IsMajorCity(province) {
		baseFee = majorCityBaseFee
		baseWeight = majorCityBaseWeight
	}

	if weight <= baseWeight {
		return baseFee
	}
	units := int64(math.Ceil((weight - baseWeight) / stepWeight))
	return baseFee + units*stepFee
}
