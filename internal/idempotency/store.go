package idempotency

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a processed-event marker is kept. Redelivery of
// the same message after this window would be re-applied.
const DefaultTTL = 7 * 24 * time.Hour

// Store deduplicates at-least-once deliveries. MarkProcessed returns false
// when the key was already claimed; Release gives the key back so a failed
// handler can be retried on redelivery.
type Store interface {
	MarkProcessed(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
