package service

import (
	"math"

	"foodapp/food-svc/internal/domain"
)

// PriceItems sums price × quantity over the line items using the catalog
// prices only. Foods missing from prices count as 0 and are returned in
// unknown. Prices carry at most two decimals, so rounding to cents only
// drops floating point noise.
func PriceItems(items []domain.OrderItem, prices map[int]float64) (total float64, unknown []int) {
	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}

		price, ok := prices[item.FoodID]
		if !ok {
			unknown = append(unknown, item.FoodID)
			continue
		}
		total += price * float64(qty)
	}
	return math.Round(total*100) / 100, unknown
}
