package service

import (
	"context"
	"time"

	"foodapp/food-svc/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CatalogRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	CreateFood(ctx context.Context, food *domain.Food) error
	ListFoods(ctx context.Context, restaurantID int) ([]domain.Food, error)
	FoodsByIDs(ctx context.Context, ids []int) ([]domain.Food, error)
	SeedCatalog(ctx context.Context, seed []domain.CatalogSeed) (bool, error)
}

// FoodLookup resolves authoritative catalog entries for pricing.
type FoodLookup interface {
	FoodsByIDs(ctx context.Context, ids []int) ([]domain.Food, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	OrdersByUser(ctx context.Context, userID int) ([]domain.Order, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type MenuCache interface {
	Menu(ctx context.Context, restaurantID int) ([]domain.Food, bool, error)
	StoreMenu(ctx context.Context, restaurantID int, foods []domain.Food) error
	Invalidate(ctx context.Context, restaurantID int) error
}

type PopularityReader interface {
	TopFoods(ctx context.Context, limit int) ([]domain.FoodScore, error)
}

type StatsReader interface {
	DailyTotals(ctx context.Context, day string) (domain.DailyStats, bool, error)
}

type OrderStatsRepository interface {
	OrderTotals(ctx context.Context, from, to time.Time) (int64, float64, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type AuthServiceInterface interface {
	Register(ctx context.Context, in SignupInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	IssueToken(user *domain.User) (string, error)
	VerifyToken(token string) (*Claims, error)
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, in RestaurantInput) (*domain.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID int) ([]domain.Food, error)
	AddFood(ctx context.Context, in FoodInput) (*domain.Food, error)
	Seed(ctx context.Context) (bool, error)
	PopularFoods(ctx context.Context, limit int) ([]domain.PopularFood, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error)
	MyOrders(ctx context.Context, userID int) ([]domain.Order, error)
	QRCode(ctx context.Context, orderID int) ([]byte, error)
}

type AnalyticsInterface interface {
	DailyStats(ctx context.Context, date string) (*domain.DailyStats, error)
	RecentStats(ctx context.Context, days int) ([]domain.DailyStats, error)
}

var (
	_ AnalyticsInterface      = (*AnalyticsService)(nil)
	_ AuthServiceInterface    = (*AuthService)(nil)
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
