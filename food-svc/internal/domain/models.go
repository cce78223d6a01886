package domain

import "time"

const OrderStatusPlaced = "Placed"

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Food struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CatalogSeed is one restaurant together with the foods created for it.
type CatalogSeed struct {
	Restaurant Restaurant
	Foods      []Food
}

type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CartItem is a line of an incoming order as sent by the client.
type CartItem struct {
	ID  int `json:"id"`
	Qty int `json:"qty"`
}

type OrderItem struct {
	FoodID   int   `json:"foodId"`
	Quantity int   `json:"qty"`
	Food     *Food `json:"food"`
}

type Order struct {
	ID        int         `json:"id"`
	UserID    *int        `json:"userId"`
	Items     []OrderItem `json:"items"`
	Customer  Customer    `json:"customer"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type PopularFood struct {
	Food   Food    `json:"food"`
	Orders float64 `json:"orders"`
}

// FoodScore is a raw popularity entry before it is resolved against the catalog.
type FoodScore struct {
	FoodID int
	Score  float64
}

// DailyStats is the order volume for one UTC day, date formatted 2006-01-02.
type DailyStats struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}
