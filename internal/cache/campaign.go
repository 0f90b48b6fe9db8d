package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/encorefund/backend/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CampaignCache holds the denormalized campaign view keyed by campaign id.
// It is a pure read optimization: entries expire after the configured TTL
// and are invalidated on every write to the underlying campaign. Concurrent
// misses may both repopulate the key; the last writer wins.
type CampaignCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCampaignCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *CampaignCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CampaignCache{client: client, ttl: ttl, log: log}
}

func campaignKey(id uuid.UUID) string {
	return "campaign:" + id.String()
}

// Get returns the cached view, or (nil, nil) on a miss. Redis errors are
// logged and reported as misses so reads fall through to the database.
func (c *CampaignCache) Get(ctx context.Context, id uuid.UUID) (*models.CampaignDetail, error) {
	data, err := c.client.Get(ctx, campaignKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("campaign cache get failed", zap.String("campaign_id", id.String()), zap.Error(err))
		}
		return nil, nil
	}

	var detail models.CampaignDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		c.log.Warn("campaign cache entry corrupt, dropping", zap.String("campaign_id", id.String()), zap.Error(err))
		_ = c.client.Del(ctx, campaignKey(id)).Err()
		return nil, nil
	}
	return &detail, nil
}

func (c *CampaignCache) Set(ctx context.Context, id uuid.UUID, detail *models.CampaignDetail) {
	data, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, campaignKey(id), data, c.ttl).Err(); err != nil {
		c.log.Warn("campaign cache set failed", zap.String("campaign_id", id.String()), zap.Error(err))
	}
}

func (c *CampaignCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, campaignKey(id)).Err(); err != nil {
		c.log.Warn("campaign cache invalidate failed", zap.String("campaign_id", id.String()), zap.Error(err))
	}
}
