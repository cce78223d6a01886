package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"foodapp/food-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Keys maintained by agg-svc.
const (
	// PopularFoodsKey is a sorted set: member food id, score units ordered.
	PopularFoodsKey = "foods:popular"

	dailyOrdersPrefix  = "orders:daily:"
	dailyRevenuePrefix = "revenue:daily:"
)

type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) MenuKey(restaurantID int) string {
	return "menu:" + strconv.Itoa(restaurantID)
}

func (c *RedisMenuCache) Menu(ctx context.Context, restaurantID int) ([]domain.Food, bool, error) {
	data, err := c.Client.Get(ctx, c.MenuKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var foods []domain.Food
	if err := json.Unmarshal(data, &foods); err != nil {
		return nil, false, err
	}
	return foods, true, nil
}

func (c *RedisMenuCache) StoreMenu(ctx context.Context, restaurantID int, foods []domain.Food) error {
	payload, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MenuKey(restaurantID), payload, c.TTL).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, restaurantID int) error {
	return c.Client.Del(ctx, c.MenuKey(restaurantID)).Err()
}

// RedisAnalytics reads the aggregates agg-svc writes.
type RedisAnalytics struct {
	Client *redis.Client
}

func NewRedisAnalytics(client *redis.Client) *RedisAnalytics {
	return &RedisAnalytics{Client: client}
}

func (p *RedisAnalytics) TopFoods(ctx context.Context, limit int) ([]domain.FoodScore, error) {
	if limit <= 0 {
		return []domain.FoodScore{}, nil
	}

	entries, err := p.Client.ZRevRangeWithScores(ctx, PopularFoodsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]domain.FoodScore, 0, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}
		foodID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		scores = append(scores, domain.FoodScore{FoodID: foodID, Score: entry.Score})
	}
	return scores, nil
}

// DailyTotals reads the counters for day. found is false when agg-svc has
// recorded nothing for that day.
func (p *RedisAnalytics) DailyTotals(ctx context.Context, day string) (domain.DailyStats, bool, error) {
	stats := domain.DailyStats{Date: day}

	values, err := p.Client.MGet(ctx, dailyOrdersPrefix+day, dailyRevenuePrefix+day).Result()
	if err != nil {
		return stats, false, err
	}

	found := false
	if raw, ok := values[0].(string); ok {
		if stats.Orders, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return stats, false, fmt.Errorf("bad order counter for %s: %w", day, err)
		}
		found = true
	}
	if raw, ok := values[1].(string); ok {
		if stats.Revenue, err = strconv.ParseFloat(raw, 64); err != nil {
			return stats, false, fmt.Errorf("bad revenue counter for %s: %w", day, err)
		}
		found = true
	}
	return stats, found, nil
}
