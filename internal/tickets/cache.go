package tickets

import (
	"context"
	"fmt"
	"time"

	"curtaincall/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	seatingPlanKeyFmt = "curtaincall:tickets:seating-plan:%s"
	statisticsKeyFmt  = "curtaincall:tickets:statistics:%s"
	overallStatsKey   = "curtaincall:tickets:statistics:overall"
)

// Cache is a best-effort store for the read-heavy seating plan and
// statistics queries. A nil *Cache is a valid no-op cache.
type Cache struct {
	store          *cache.Client
	seatingPlanTTL time.Duration
	statisticsTTL  time.Duration
}

// NewCache creates a query cache backed by the given Redis client.
func NewCache(client *redis.Client, seatingPlanTTL, statisticsTTL time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{
		store:          cache.New(client),
		seatingPlanTTL: seatingPlanTTL,
		statisticsTTL:  statisticsTTL,
	}
}

func (c *Cache) enabled() bool {
	return c != nil && c.store != nil
}

func (c *Cache) GetSeatingPlan(ctx context.Context, performanceID uuid.UUID) (*SeatingPlan, bool) {
	if !c.enabled() {
		return nil, false
	}
	var plan SeatingPlan
	if err := c.store.Get(ctx, fmt.Sprintf(seatingPlanKeyFmt, performanceID), &plan); err != nil {
		return nil, false
	}
	return &plan, true
}

func (c *Cache) SetSeatingPlan(ctx context.Context, performanceID uuid.UUID, plan *SeatingPlan) {
	if !c.enabled() {
		return
	}
	c.store.Set(ctx, fmt.Sprintf(seatingPlanKeyFmt, performanceID), plan, c.seatingPlanTTL)
}

func (c *Cache) GetStatistics(ctx context.Context, key string) (*Statistics, bool) {
	if !c.enabled() {
		return nil, false
	}
	var stats Statistics
	if err := c.store.Get(ctx, key, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *Cache) SetStatistics(ctx context.Context, key string, stats *Statistics) {
	if !c.enabled() {
		return
	}
	c.store.Set(ctx, key, stats, c.statisticsTTL)
}

// InvalidatePerformance drops every cached view touched by a write against
// the given performance.
func (c *Cache) InvalidatePerformance(ctx context.Context, performanceID uuid.UUID) {
	if !c.enabled() {
		return
	}
	c.store.Delete(ctx,
		fmt.Sprintf(seatingPlanKeyFmt, performanceID),
		fmt.Sprintf(statisticsKeyFmt, performanceID),
		overallStatsKey,
	)
}

func statisticsKey(performanceID uuid.UUID) string {
	return fmt.Sprintf(statisticsKeyFmt, performanceID)
}
