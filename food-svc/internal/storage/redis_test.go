package storage

import (
	"context"
	"testing"
	"time"

	"foodapp/food-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisMenuCache(t *testing.T) {
	mr, client := newMiniRedis(t)
	cache := NewRedisMenuCache(client, 5*time.Minute)
	ctx := context.Background()

	_, hit, err := cache.Menu(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)

	foods := []domain.Food{
		{ID: 1, RestaurantID: 1, Name: "Hyderabadi Biryani", Price: 250},
		{ID: 2, RestaurantID: 1, Name: "Chicken Biryani", Price: 220},
	}
	require.NoError(t, cache.StoreMenu(ctx, 1, foods))
	assert.Equal(t, 5*time.Minute, mr.TTL("menu:1"))

	cached, hit, err := cache.Menu(ctx, 1)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, foods, cached)

	require.NoError(t, cache.Invalidate(ctx, 1))
	assert.False(t, mr.Exists("menu:1"))
}

func TestRedisMenuCache_EmptyMenuIsAHit(t *testing.T) {
	_, client := newMiniRedis(t)
	cache := NewRedisMenuCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.StoreMenu(ctx, 3, []domain.Food{}))

	cached, hit, err := cache.Menu(ctx, 3)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, cached)
}

func TestRedisMenuCache_CorruptEntry(t *testing.T) {
	mr, client := newMiniRedis(t)
	cache := NewRedisMenuCache(client, time.Minute)
	require.NoError(t, mr.Set("menu:2", "not json"))

	_, hit, err := cache.Menu(context.Background(), 2)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestRedisAnalytics_TopFoods(t *testing.T) {
	mr, client := newMiniRedis(t)
	popularity := NewRedisAnalytics(client)

	_, err := mr.ZAdd(PopularFoodsKey, 3, "1")
	require.NoError(t, err)
	_, err = mr.ZAdd(PopularFoodsKey, 9, "3")
	require.NoError(t, err)
	_, err = mr.ZAdd(PopularFoodsKey, 5, "2")
	require.NoError(t, err)
	_, err = mr.ZAdd(PopularFoodsKey, 100, "garbage")
	require.NoError(t, err)

	scores, err := popularity.TopFoods(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.FoodScore{
		{FoodID: 3, Score: 9},
		{FoodID: 2, Score: 5},
	}, scores)
}

func TestRedisAnalytics_EmptySet(t *testing.T) {
	_, client := newMiniRedis(t)
	popularity := NewRedisAnalytics(client)

	scores, err := popularity.TopFoods(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestRedisAnalytics_DailyTotals(t *testing.T) {
	mr, client := newMiniRedis(t)
	analytics := NewRedisAnalytics(client)
	require.NoError(t, mr.Set("orders:daily:2026-03-01", "4"))
	require.NoError(t, mr.Set("revenue:daily:2026-03-01", "660.5"))

	stats, found, err := analytics.DailyTotals(context.Background(), "2026-03-01")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.DailyStats{Date: "2026-03-01", Orders: 4, Revenue: 660.5}, stats)

	stats, found, err = analytics.DailyTotals(context.Background(), "2026-03-02")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(0), stats.Orders)
}

func TestRedisAnalytics_DailyTotalsCorruptCounter(t *testing.T) {
	mr, client := newMiniRedis(t)
	analytics := NewRedisAnalytics(client)
	require.NoError(t, mr.Set("orders:daily:2026-03-01", "many"))

	_, found, err := analytics.DailyTotals(context.Background(), "2026-03-01")
	assert.Error(t, err)
	assert.False(t, found)
}
