package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodapp/food-svc/internal/domain"
)

const (
	dayLayout        = "2006-01-02"
	defaultStatsDays = 7
	maxStatsDays     = 31
)

type AnalyticsService struct {
	stats  StatsReader
	orders OrderStatsRepository
	now    func() time.Time
}

// NewAnalyticsService prefers the agg-svc counters and falls back to
// counting orders in Postgres. stats may be nil.
func NewAnalyticsService(stats StatsReader, orders OrderStatsRepository) *AnalyticsService {
	return &AnalyticsService{
		stats:  stats,
		orders: orders,
		now:    time.Now,
	}
}

// DailyStats reports order volume for date (YYYY-MM-DD, UTC). An empty
// date means today.
func (s *AnalyticsService) DailyStats(ctx context.Context, date string) (*domain.DailyStats, error) {
	day := s.now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		parsed, err := time.Parse(dayLayout, date)
		if err != nil {
			return nil, validationError("Invalid date")
		}
		day = parsed
	}
	return s.statsForDay(ctx, day)
}

// RecentStats returns one entry per day for the last days days, newest first.
func (s *AnalyticsService) RecentStats(ctx context.Context, days int) ([]domain.DailyStats, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	result := make([]domain.DailyStats, 0, days)
	for i := 0; i < days; i++ {
		stats, err := s.statsForDay(ctx, today.AddDate(0, 0, -i))
		if err != nil {
			return nil, err
		}
		result = append(result, *stats)
	}
	return result, nil
}

func (s *AnalyticsService) statsForDay(ctx context.Context, day time.Time) (*domain.DailyStats, error) {
	key := day.Format(dayLayout)

	if s.stats != nil {
		stats, found, err := s.stats.DailyTotals(ctx, key)
		if err != nil {
			log.Printf("[food-svc] daily counters unavailable for %s: %v", key, err)
		} else if found {
			return &stats, nil
		}
	}

	count, revenue, err := s.orders.OrderTotals(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to count orders for %s: %w", key, err)
	}
	return &domain.DailyStats{Date: key, Orders: count, Revenue: revenue}, nil
}
