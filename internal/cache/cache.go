package cache

import (
	"context"
	"time"
)

// ICache stores short-lived strings. A zero ttl means no expiry.
type ICache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
