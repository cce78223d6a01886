package tests

import (
	"context"
	"sort"
	"sync"
	"time"

	"foodapp/food-svc/internal/domain"
)

// memStore is an in-memory stand-in for the Postgres repository.
type memStore struct {
	mu          sync.Mutex
	users       []domain.User
	restaurants []domain.Restaurant
	foods       []domain.Food
	orders      []domain.Order
	qrCodes     map[int][]byte
}

func newMemStore() *memStore {
	return &memStore{qrCodes: map[int][]byte{}}
}

func (s *memStore) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	user.ID = len(s.users) + 1
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

func (s *memStore) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) CreateRestaurant(_ context.Context, rest *domain.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rest.ID = len(s.restaurants) + 1
	rest.CreatedAt = time.Now()
	s.restaurants = append(s.restaurants, *rest)
	return nil
}

func (s *memStore) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Restaurant{}, s.restaurants...), nil
}

func (s *memStore) CreateFood(_ context.Context, food *domain.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertFood(food)
}

func (s *memStore) insertFood(food *domain.Food) error {
	if food.RestaurantID < 1 || food.RestaurantID > len(s.restaurants) {
		return domain.ErrInvalidReference
	}
	food.ID = len(s.foods) + 1
	food.CreatedAt = time.Now()
	s.foods = append(s.foods, *food)
	return nil
}

func (s *memStore) ListFoods(_ context.Context, restaurantID int) ([]domain.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	foods := []domain.Food{}
	for _, food := range s.foods {
		if food.RestaurantID == restaurantID {
			foods = append(foods, food)
		}
	}
	return foods, nil
}

func (s *memStore) FoodsByIDs(_ context.Context, ids []int) ([]domain.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	foods := []domain.Food{}
	for _, id := range ids {
		if food, ok := s.food(id); ok {
			foods = append(foods, food)
		}
	}
	return foods, nil
}

func (s *memStore) food(id int) (domain.Food, bool) {
	if id < 1 || id > len(s.foods) {
		return domain.Food{}, false
	}
	return s.foods[id-1], true
}

func (s *memStore) SeedCatalog(_ context.Context, seed []domain.CatalogSeed) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.restaurants) > 0 {
		return false, nil
	}
	for _, entry := range seed {
		rest := entry.Restaurant
		rest.ID = len(s.restaurants) + 1
		s.restaurants = append(s.restaurants, rest)
		for _, food := range entry.Foods {
			food.RestaurantID = rest.ID
			if err := s.insertFood(&food); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

func (s *memStore) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = len(s.orders) + 1
	order.CreatedAt = time.Now()
	stored := *order
	stored.Items = append([]domain.OrderItem{}, order.Items...)
	s.orders = append(s.orders, stored)
	return nil
}

func (s *memStore) OrdersByUser(_ context.Context, userID int) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []domain.Order{}
	for _, order := range s.orders {
		if order.UserID == nil || *order.UserID != userID {
			continue
		}
		expanded := order
		expanded.Items = make([]domain.OrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			if food, ok := s.food(item.FoodID); ok {
				item.Food = &food
			}
			expanded.Items = append(expanded.Items, item)
		}
		orders = append(orders, expanded)
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (s *memStore) SaveQRCode(_ context.Context, orderID int, qr []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrCodes[orderID] = qr
	return nil
}

func (s *memStore) GetQRCode(_ context.Context, orderID int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if orderID < 1 || orderID > len(s.orders) {
		return nil, domain.ErrNotFound
	}
	return s.qrCodes[orderID], nil
}

func (s *memStore) OrderTotals(_ context.Context, from, to time.Time) (int64, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		count   int64
		revenue float64
	)
	for _, order := range s.orders {
		if order.CreatedAt.Before(from) || !order.CreatedAt.Before(to) {
			continue
		}
		count++
		revenue += order.Total
	}
	return count, revenue, nil
}
