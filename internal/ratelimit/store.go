package ratelimit

import (
	"context"
	"time"
)

// Result is the state of a key after a hit was offered to the store.
type Result struct {
	Allowed bool
	Count   int
	ResetAt time.Time
}

// Store admits one hit for key when fewer than limit hits fall inside the
// trailing window. A refused hit is not recorded, so ResetAt on a refusal is
// the moment the oldest admitted hit leaves the window and a slot frees up.
type Store interface {
	Increment(ctx context.Context, key string, window time.Duration, limit int) (Result, error)
}
