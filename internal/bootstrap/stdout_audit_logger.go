package bootstrap

import (
	"context"
	"time"

	"go-leave/internal/audit"

	"go.uber.org/zap"
)

// StdoutRecorder echoes every audit entry to the log before handing it to
// the next recorder, so lifecycle events stay visible when the database is
// already unreachable.
type StdoutRecorder struct {
	next   audit.Recorder
	logger *zap.Logger
}

func NewStdoutRecorder(next audit.Recorder) *StdoutRecorder {
	return &StdoutRecorder{next: next, logger: zap.L().Named("audit")}
}

func (r *StdoutRecorder) Record(ctx context.Context, e audit.Entry) {
	r.logger.Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", e.Action),
		zap.String("entity", e.Entity),
		zap.String("entity_id", e.EntityID),
		zap.Any("meta", e.Metadata),
	)
	if r.next != nil {
		r.next.Record(ctx, e)
	}
}
