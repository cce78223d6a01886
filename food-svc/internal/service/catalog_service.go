package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"foodapp/food-svc/internal/domain"
)

const (
	defaultPopularLimit = 5
	maxPopularLimit     = 50
)

// catalogSeed is written once into an empty catalog.
var catalogSeed = []domain.CatalogSeed{
	{
		Restaurant: domain.Restaurant{Name: "Biryani Palace", Description: "Authentic Hyderabadi biryani"},
		Foods: []domain.Food{
			{Name: "Hyderabadi Biryani", Price: 250, Description: "Fragrant rice with marinated meat"},
			{Name: "Chicken Biryani", Price: 220, Description: "Spiced chicken with rice"},
		},
	},
	{
		Restaurant: domain.Restaurant{Name: "Dosa Corner", Description: "Crispy South Indian dosas"},
		Foods: []domain.Food{
			{Name: "Masala Dosa", Price: 80, Description: "Crispy dosa with potato masala"},
		},
	},
}

type RestaurantInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type FoodInput struct {
	RestaurantID int     `json:"restaurantId" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0,lt=100000000,cents"`
	Image        string  `json:"image"`
}

type CatalogService struct {
	repo       CatalogRepository
	cache      MenuCache
	popularity PopularityReader
}

// NewCatalogService accepts nil cache and popularity backends; the
// corresponding features are then skipped.
func NewCatalogService(repo CatalogRepository, cache MenuCache, popularity PopularityReader) *CatalogService {
	return &CatalogService{
		repo:       repo,
		cache:      cache,
		popularity: popularity,
	}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return restaurants, nil
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, in RestaurantInput) (*domain.Restaurant, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in, "Missing name"); err != nil {
		return nil, err
	}

	rest := &domain.Restaurant{Name: in.Name, Description: in.Description}
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}
	return rest, nil
}

func (s *CatalogService) ListMenu(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	if s.cache != nil {
		foods, ok, err := s.cache.Menu(ctx, restaurantID)
		if err != nil {
			log.Printf("[food-svc] menu cache read failed for restaurant %d: %v", restaurantID, err)
		} else if ok {
			return foods, nil
		}
	}

	foods, err := s.repo.ListFoods(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	if foods == nil {
		foods = []domain.Food{}
	}

	if s.cache != nil {
		if err := s.cache.StoreMenu(ctx, restaurantID, foods); err != nil {
			log.Printf("[food-svc] menu cache write failed for restaurant %d: %v", restaurantID, err)
		}
	}
	return foods, nil
}

func (s *CatalogService) AddFood(ctx context.Context, in FoodInput) (*domain.Food, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in, "Missing fields"); err != nil {
		return nil, err
	}

	food := &domain.Food{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
	}
	if err := s.repo.CreateFood(ctx, food); err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			return nil, validationError("Unknown restaurant")
		}
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, food.RestaurantID); err != nil {
			log.Printf("[food-svc] menu cache invalidation failed for restaurant %d: %v", food.RestaurantID, err)
		}
	}
	return food, nil
}

// Seed fills an empty catalog with the sample restaurants. It reports
// whether anything was written; running it again is a no-op.
func (s *CatalogService) Seed(ctx context.Context) (bool, error) {
	seeded, err := s.repo.SeedCatalog(ctx, catalogSeed)
	if err != nil {
		return false, fmt.Errorf("failed to seed catalog: %w", err)
	}
	if seeded {
		log.Printf("[food-svc] seeded catalog with %d restaurants", len(catalogSeed))
	}
	return seeded, nil
}

func (s *CatalogService) PopularFoods(ctx context.Context, limit int) ([]domain.PopularFood, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	popular := []domain.PopularFood{}
	if s.popularity == nil {
		return popular, nil
	}

	scores, err := s.popularity.TopFoods(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read popular foods: %w", err)
	}
	if len(scores) == 0 {
		return popular, nil
	}

	ids := make([]int, 0, len(scores))
	for _, score := range scores {
		ids = append(ids, score.FoodID)
	}
	foods, err := s.repo.FoodsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve popular foods: %w", err)
	}

	byID := make(map[int]domain.Food, len(foods))
	for _, food := range foods {
		byID[food.ID] = food
	}
	for _, score := range scores {
		food, ok := byID[score.FoodID]
		if !ok {
			continue
		}
		popular = append(popular, domain.PopularFood{Food: food, Orders: score.Score})
	}
	return popular, nil
}
