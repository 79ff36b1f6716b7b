package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"panaderia_api/internal/infrastructure/config"
	"panaderia_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "panaderia"

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Exists(context.Context, ...string) *redis.IntCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
}

// WebhookDeduper stores an applied-marker per (payment, status) pair.
type WebhookDeduper struct {
	store cmdable
	ttl   time.Duration
}

var _ interfaces.IWebhookDeduper = (*WebhookDeduper)(nil)

// NewWebhookDeduper connects and pings Redis.
func NewWebhookDeduper(ctx context.Context, cfg config.RedisConfig) (*WebhookDeduper, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &WebhookDeduper{store: raw, ttl: cfg.DedupeTTL}, nil
}

func (d *WebhookDeduper) key(k string) string {
	return keyNamespace + ":" + k
}

func (d *WebhookDeduper) Seen(ctx context.Context, key string) (bool, error) {
	if d == nil || d.store == nil {
		return false, nil
	}
	n, err := d.store.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *WebhookDeduper) Mark(ctx context.Context, key string) error {
	if d == nil || d.store == nil {
		return nil
	}
	return d.store.Set(ctx, d.key(key), time.Now().UTC().Format(time.RFC3339), d.ttl).Err()
}
