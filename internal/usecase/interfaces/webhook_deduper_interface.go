package interfaces

import "context"

// IWebhookDeduper remembers webhook deliveries that were already applied.
type IWebhookDeduper interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}
