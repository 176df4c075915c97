package ratelimit

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
)

// Endpoint classes share one budget per identity.
const (
	ClassSubmit  = "submit"
	ClassApprove = "approve"
	ClassCancel  = "cancel"
)

type Policy struct {
	Limit  int
	Window time.Duration
}

type Decision struct {
	Allowed    bool
	Count      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds up so a client never retries too early.
func (d Decision) RetryAfterSeconds() int {
	if d.RetryAfter <= 0 {
		return 0
	}
	return int(math.Ceil(d.RetryAfter.Seconds()))
}

type Limiter struct {
	store    Store
	policies map[string]Policy
	now      func() time.Time
	logger   *zap.Logger
}

func NewLimiter(store Store, policies map[string]Policy, logger ...*zap.Logger) *Limiter {
	l := zap.L().Named("ratelimit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ratelimit")
	}
	return &Limiter{store: store, policies: policies, now: time.Now, logger: l}
}

func (l *Limiter) Policy(class string) (Policy, bool) {
	p, ok := l.policies[class]
	return p, ok
}

// Allow records a hit for identity within the endpoint class. Refused hits
// are not counted, so retrying after RetryAfter succeeds. A class without a
// configured policy is never limited.
func (l *Limiter) Allow(ctx context.Context, identity, class string) (Decision, error) {
	p, ok := l.policies[class]
	if !ok || p.Limit <= 0 {
		return Decision{Allowed: true}, nil
	}

	res, err := l.store.Increment(ctx, identity+":"+class, p.Window, p.Limit)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{
		Allowed:   res.Allowed,
		Count:     res.Count,
		Remaining: max(p.Limit-res.Count, 0),
		ResetAt:   res.ResetAt,
	}
	if !d.Allowed {
		d.RetryAfter = res.ResetAt.Sub(l.now())
		if d.RetryAfter < time.Second {
			d.RetryAfter = time.Second
		}
		l.logger.Warn("rate limit exceeded",
			zap.String("identity", identity),
			zap.String("class", class),
			zap.Int("count", res.Count),
			zap.Int("limit", p.Limit),
		)
	}
	return d, nil
}

// PoliciesFromBudgets builds the per-class policies sharing one window.
func PoliciesFromBudgets(window time.Duration, submit, approve, cancel int) map[string]Policy {
	return map[string]Policy{
		ClassSubmit:  {Limit: submit, Window: window},
		ClassApprove: {Limit: approve, Window: window},
		ClassCancel:  {Limit: cancel, Window: window},
	}
}
