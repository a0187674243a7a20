package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sumanth1803/DietPlan/logger"

	"github.com/redis/go-redis/v9"
)

const summaryTTL = 10 * time.Minute

// SummaryCache keeps computed day summaries in redis. A nil client makes
// every operation a no-op, so the service runs fine without redis.
type SummaryCache struct {
	rdb *redis.Client
}

func NewSummaryCache(rdb *redis.Client) *SummaryCache {
	return &SummaryCache{rdb: rdb}
}

func summaryKey(userID uint, day time.Time) string {
	return fmt.Sprintf("summary:%d:%s", userID, day.Format("2006-01-02"))
}

func (c *SummaryCache) Get(ctx context.Context, userID uint, day time.Time) (*DaySummary, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, summaryKey(userID, day)).Bytes()
	if err != nil {
		return nil, false
	}
	var out DaySummary
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (c *SummaryCache) Set(ctx context.Context, userID uint, day time.Time, s *DaySummary) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, summaryKey(userID, day), raw, summaryTTL).Err(); err != nil {
		logger.Log.Errorw("summary cache set failed", "err", err)
	}
}

func (c *SummaryCache) Invalidate(ctx context.Context, userID uint, day time.Time) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, summaryKey(userID, day)).Err(); err != nil {
		logger.Log.Errorw("summary cache invalidate failed", "err", err)
	}
}
