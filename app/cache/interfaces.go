package cache

import (
	"context"
	"time"
)

// Cache stores opaque payloads by key. Get returns ok=false on a miss or when
// the entry is older than maxAge; maxAge <= 0 accepts an entry of any age.
type Cache interface {
	Get(ctx context.Context, key string, maxAge time.Duration) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
