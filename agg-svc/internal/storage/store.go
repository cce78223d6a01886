package storage

import (
	"context"
	"strconv"
	"time"

	"foodapp/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	PopularFoodsKey = "foods:popular"
	dailyRetention  = 7 * 24 * time.Hour
)

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		now: time.Now,
	}
}

func (s *Store) OrderMarkerKey(orderID int) string {
	return "orders:seen:" + strconv.Itoa(orderID)
}

func DailyOrdersKey(day string) string {
	return "orders:daily:" + day
}

func DailyRevenueKey(day string) string {
	return "revenue:daily:" + day
}

// RecordOrder folds one placed order into the popularity and daily
// counters. Redelivered orders are detected by a marker key and skipped;
// the first return value reports whether the counters were updated.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) (bool, error) {
	fresh, err := s.rdb.SetNX(ctx, s.OrderMarkerKey(event.OrderID), "1", dailyRetention).Result()
	if err != nil {
		return false, err
	}
	if !fresh {
		return false, nil
	}

	placedAt := event.Timestamp
	if placedAt.IsZero() {
		placedAt = s.now()
	}
	day := placedAt.UTC().Format("2006-01-02")
	ordersKey := DailyOrdersKey(day)
	revenueKey := DailyRevenueKey(day)

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			pipe.ZIncrBy(ctx, PopularFoodsKey, float64(qty), strconv.Itoa(item.FoodID))
		}
		pipe.Incr(ctx, ordersKey)
		pipe.IncrByFloat(ctx, revenueKey, event.Total)
		pipe.Expire(ctx, ordersKey, dailyRetention)
		pipe.Expire(ctx, revenueKey, dailyRetention)
		return nil
	})
	if err != nil {
		// Release the marker so the retried message is counted.
		s.rdb.Del(ctx, s.OrderMarkerKey(event.OrderID))
		return false, err
	}
	return true, nil
}
