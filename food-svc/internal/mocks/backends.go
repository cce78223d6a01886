package mocks

import (
	"context"

	"foodapp/food-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MenuCache struct {
	mock.Mock
}

func (_m *MenuCache) Menu(ctx context.Context, restaurantID int) ([]domain.Food, bool, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Food)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *MenuCache) StoreMenu(ctx context.Context, restaurantID int, foods []domain.Food) error {
	ret := _m.Called(ctx, restaurantID, foods)
	return ret.Error(0)
}

func (_m *MenuCache) Invalidate(ctx context.Context, restaurantID int) error {
	ret := _m.Called(ctx, restaurantID)
	return ret.Error(0)
}

type PopularityReader struct {
	mock.Mock
}

func (_m *PopularityReader) TopFoods(ctx context.Context, limit int) ([]domain.FoodScore, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.FoodScore
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.FoodScore)
	}
	return r0, ret.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type StatsReader struct {
	mock.Mock
}

func (_m *StatsReader) DailyTotals(ctx context.Context, day string) (domain.DailyStats, bool, error) {
	ret := _m.Called(ctx, day)
	return ret.Get(0).(domain.DailyStats), ret.Bool(1), ret.Error(2)
}
