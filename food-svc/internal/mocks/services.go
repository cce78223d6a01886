package mocks

import (
	"context"

	"foodapp/food-svc/internal/domain"
	"foodapp/food-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

type AuthServiceInterface struct {
	mock.Mock
}

func (_m *AuthServiceInterface) Register(ctx context.Context, in service.SignupInput) (*domain.User, error) {
	ret := _m.Called(ctx, in)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) Authenticate(ctx context.Context, email string, password string) (string, error) {
	ret := _m.Called(ctx, email, password)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthServiceInterface) IssueToken(user *domain.User) (string, error) {
	ret := _m.Called(user)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthServiceInterface) VerifyToken(token string) (*service.Claims, error) {
	ret := _m.Called(token)
	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}
	return r0, ret.Error(1)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func (_m *CatalogServiceInterface) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) CreateRestaurant(ctx context.Context, in service.RestaurantInput) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, in)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) ListMenu(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) AddFood(ctx context.Context, in service.FoodInput) (*domain.Food, error) {
	ret := _m.Called(ctx, in)
	var r0 *domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) Seed(ctx context.Context) (bool, error) {
	ret := _m.Called(ctx)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CatalogServiceInterface) PopularFoods(ctx context.Context, limit int) ([]domain.PopularFood, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.PopularFood
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularFood)
	}
	return r0, ret.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (*domain.Order, error) {
	ret := _m.Called(ctx, in)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) MyOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type AnalyticsInterface struct {
	mock.Mock
}

func (_m *AnalyticsInterface) DailyStats(ctx context.Context, date string) (*domain.DailyStats, error) {
	ret := _m.Called(ctx, date)
	var r0 *domain.DailyStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DailyStats)
	}
	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) RecentStats(ctx context.Context, days int) ([]domain.DailyStats, error) {
	ret := _m.Called(ctx, days)
	var r0 []domain.DailyStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.DailyStats)
	}
	return r0, ret.Error(1)
}
