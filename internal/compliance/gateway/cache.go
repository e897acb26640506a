package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"veripay/internal/compliance/models"
)

// CachedGateway wraps a Gateway with a short-lived Redis cache in front of
// FetchOutstandingRequirements. Requirement listings change only when a
// submission lands, so a small TTL keeps the reconcile path off the
// processor's rate limits. All mutating calls pass through and invalidate
// the account's cached listing.
type CachedGateway struct {
	Gateway

	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGateway decorates next with a requirements cache. A nil redis
// client disables caching and the decorator becomes a pass-through.
func NewCachedGateway(next Gateway, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedGateway {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedGateway{Gateway: next, redis: rdb, ttl: ttl, logger: logger}
}

func (c *CachedGateway) FetchOutstandingRequirements(ctx context.Context, accountID string) ([]string, error) {
	if c.redis == nil {
		return c.Gateway.FetchOutstandingRequirements(ctx, accountID)
	}

	key := requirementsKey(accountID)
	cached, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		var reqs []string
		if err := json.Unmarshal([]byte(cached), &reqs); err == nil {
			return reqs, nil
		}
		c.logger.WarnContext(ctx, "discarding unreadable cached requirements", "key", key)
	}

	reqs, err := c.Gateway.FetchOutstandingRequirements(ctx, accountID)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(reqs)
	if err == nil {
		if err := c.redis.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "failed to cache requirements", "key", key, "error", err)
		}
	}
	return reqs, nil
}

func (c *CachedGateway) UpdateAccountDocument(ctx context.Context, accountID, bucket string, fileRefs []string) error {
	if err := c.Gateway.UpdateAccountDocument(ctx, accountID, bucket, fileRefs); err != nil {
		return err
	}
	c.invalidate(ctx, accountID)
	return nil
}

func (c *CachedGateway) UpdateAccountEntityDocument(ctx context.Context, accountID, front string) error {
	if err := c.Gateway.UpdateAccountEntityDocument(ctx, accountID, front); err != nil {
		return err
	}
	c.invalidate(ctx, accountID)
	return nil
}

func (c *CachedGateway) UpdatePersonDocument(ctx context.Context, accountID, personID, bucket string, shape models.WireShape, fileRef string) error {
	if err := c.Gateway.UpdatePersonDocument(ctx, accountID, personID, bucket, shape, fileRef); err != nil {
		return err
	}
	c.invalidate(ctx, accountID)
	return nil
}

func (c *CachedGateway) UpdateBusinessTaxID(ctx context.Context, accountID, taxID string) error {
	if err := c.Gateway.UpdateBusinessTaxID(ctx, accountID, taxID); err != nil {
		return err
	}
	c.invalidate(ctx, accountID)
	return nil
}

func (c *CachedGateway) invalidate(ctx context.Context, accountID string) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, requirementsKey(accountID)).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate cached requirements", "account_id", accountID, "error", err)
	}
}

func requirementsKey(accountID string) string {
	return "veripay:requirements:" + accountID
}
