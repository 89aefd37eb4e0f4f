package services

import "github.com/campo22/food-delivery-app/entity"

// Monetary amounts are int64 minor units throughout; no floats.
// Aggregate totals are always recomputed from the lines, never patched
// incrementally, so a missed update cannot drift the stored value.

func LineTotal(quantity int, unitPrice int64) int64 {
	return int64(quantity) * unitPrice
}

func CartTotal(items []entity.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.LineTotal
	}
	return total
}

func OrderTotal(items []entity.OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.LineTotal
	}
	return total
}
