package domain

import "time"

const EventOrderPlaced = "order_placed"

type OrderEventItem struct {
	FoodID   int `json:"food_id"`
	Quantity int `json:"qty"`
}

// OrderEvent is the message food-svc publishes on the orders topic.
type OrderEvent struct {
	Type      string           `json:"type"`
	OrderID   int              `json:"order_id"`
	UserID    *int             `json:"user_id"`
	Items     []OrderEventItem `json:"items"`
	Total     float64          `json:"total"`
	Timestamp time.Time        `json:"timestamp"`
}
