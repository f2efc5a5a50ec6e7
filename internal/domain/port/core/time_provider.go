package core

import (
	"context"
	"time"
)

// TimeProvider abstracts clock access so record timestamps and request
// deadlines can be pinned in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
