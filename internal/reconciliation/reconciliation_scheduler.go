package reconciliation

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const runTimeout = 30 * time.Minute

// cronLogger routes cron's own messages through zap.
type cronLogger struct{ l *zap.Logger }

func (c cronLogger) Info(msg string, kv ...interface{}) {
	c.l.Sugar().Debugw(msg, kv...)
}

func (c cronLogger) Error(err error, msg string, kv ...interface{}) {
	c.l.Sugar().Errorw(msg, append(kv, "error", err)...)
}

// NewScheduler registers a nightly run on schedule. Overlapping ticks are
// skipped while a run is still going. The caller starts and stops the cron.
func NewScheduler(svc Service, schedule string, logger *zap.Logger) (*cron.Cron, error) {
	l := logger.Named("reconciliation.scheduler")
	cl := cronLogger{l: l}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		res := svc.Run(ctx)
		if len(res.Errors) > 0 {
			l.Warn("scheduled reconciliation finished with errors", zap.Strings("errors", res.Errors))
		}
	})
	if err != nil {
		return nil, err
	}
	l.Info("reconciliation scheduled", zap.String("schedule", schedule))
	return c, nil
}
