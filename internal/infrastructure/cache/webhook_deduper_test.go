package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"panaderia_api/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

type mockCmdable struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	if m.failErr != nil {
		return redis.NewIntResult(0, m.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := m.values[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *mockCmdable) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if m.failErr != nil {
		return redis.NewStatusResult("", m.failErr)
	}
	m.values[key] = value.(string)
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestWebhookDeduperLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	d := &WebhookDeduper{store: mock, ttl: time.Hour}

	seen, err := d.Seen(ctx, "webhook:mp:P1:paid")
	if err != nil || seen {
		t.Fatalf("expected unseen key, got seen=%v err=%v", seen, err)
	}
	if err := d.Mark(ctx, "webhook:mp:P1:paid"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if mock.ttls["panaderia:webhook:mp:P1:paid"] != time.Hour {
		t.Fatalf("expected namespaced key with ttl, got %v", mock.ttls)
	}
	seen, err = d.Seen(ctx, "webhook:mp:P1:paid")
	if err != nil || !seen {
		t.Fatalf("expected seen key, got seen=%v err=%v", seen, err)
	}
	if seen, _ := d.Seen(ctx, "webhook:mp:P1:rejected"); seen {
		t.Fatalf("a different status must not be deduped")
	}
}

func TestWebhookDeduperErrors(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	mock.failErr = errors.New("connection refused")
	d := &WebhookDeduper{store: mock, ttl: time.Hour}

	if _, err := d.Seen(ctx, "k"); err == nil {
		t.Fatalf("expected error from Exists")
	}
	if err := d.Mark(ctx, "k"); err == nil {
		t.Fatalf("expected error from Set")
	}
}

func TestWebhookDeduperNil(t *testing.T) {
	var d *WebhookDeduper
	if seen, err := d.Seen(context.Background(), "k"); seen || err != nil {
		t.Fatalf("nil deduper must report unseen")
	}
	if err := d.Mark(context.Background(), "k"); err != nil {
		t.Fatalf("nil deduper mark must be a no-op")
	}
}

func TestNewWebhookDeduperRequiresURL(t *testing.T) {
	if _, err := NewWebhookDeduper(context.Background(), config.RedisConfig{}); err == nil {
		t.Fatalf("expected error without url")
	}
	if _, err := NewWebhookDeduper(context.Background(), config.RedisConfig{URL: "://bad"}); err == nil {
		t.Fatalf("expected parse error")
	}
}
