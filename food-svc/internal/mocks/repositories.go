package mocks

import (
	"context"
	"time"

	"foodapp/food-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.User) error); ok {
		return rf(ctx, user)
	}
	return ret.Error(0)
}

func (_m *UserRepository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ret := _m.Called(ctx, email)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	ret := _m.Called(ctx, rest)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Restaurant) error); ok {
		return rf(ctx, rest)
	}
	return ret.Error(0)
}

func (_m *CatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) CreateFood(ctx context.Context, food *domain.Food) error {
	ret := _m.Called(ctx, food)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Food) error); ok {
		return rf(ctx, food)
	}
	return ret.Error(0)
}

func (_m *CatalogRepository) ListFoods(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) FoodsByIDs(ctx context.Context, ids []int) ([]domain.Food, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) SeedCatalog(ctx context.Context, seed []domain.CatalogSeed) (bool, error) {
	ret := _m.Called(ctx, seed)
	return ret.Bool(0), ret.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Order) error); ok {
		return rf(ctx, order)
	}
	return ret.Error(0)
}

func (_m *OrderRepository) OrdersByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	ret := _m.Called(ctx, orderID, qr)
	return ret.Error(0)
}

func (_m *OrderRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type OrderStatsRepository struct {
	mock.Mock
}

func (_m *OrderStatsRepository) OrderTotals(ctx context.Context, from time.Time, to time.Time) (int64, float64, error) {
	ret := _m.Called(ctx, from, to)
	return ret.Get(0).(int64), ret.Get(1).(float64), ret.Error(2)
}
