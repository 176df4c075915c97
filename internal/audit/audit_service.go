package audit

import (
	"context"
	"encoding/json"
	"time"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Recorder writes audit entries on a best-effort basis. Failures are logged
// and never reach the caller, so record only after the audited change has
// committed.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Recorder
	List(ctx context.Context, q ListAuditLogsQuery) ([]AuditLogResponse, response.PaginationMeta, error)
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Record(ctx context.Context, e Entry) {
	logger := contextutil.GetLogger(ctx, s.logger)

	meta := make(map[string]any, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		meta["request_id"] = rid
	}

	row := &AuditLog{
		ID:        uuid.New(),
		ActorID:   e.ActorID,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		OldValues: s.snapshot(logger, e.Old),
		NewValues: s.snapshot(logger, e.New),
		CreatedAt: s.now().UTC(),
	}
	if len(meta) > 0 {
		row.Metadata = s.snapshot(logger, meta)
	}

	// The caller's context may already be cancelled once its response is written.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.repo.Create(writeCtx, row); err != nil {
		logger.Error("failed to write audit log",
			zap.String("action", e.Action),
			zap.String("entity", e.Entity),
			zap.String("entity_id", e.EntityID),
			zap.Error(err),
		)
	}
}

func (s *service) snapshot(logger *zap.Logger, v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		logger.Warn("audit snapshot not serializable", zap.Error(err))
		return nil
	}
	return datatypes.JSON(b)
}

func (s *service) List(ctx context.Context, q ListAuditLogsQuery) ([]AuditLogResponse, response.PaginationMeta, error) {
	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	f := Filter{
		Action:   q.Action,
		Entity:   q.Entity,
		EntityID: q.EntityID,
		Limit:    size,
		Offset:   (page - 1) * size,
	}
	if q.ActorID != "" {
		id, err := uuid.Parse(q.ActorID)
		if err != nil {
			return nil, response.PaginationMeta{}, apperror.InvalidField("actor_id")
		}
		f.ActorID = &id
	}

	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to list audit logs", zap.Error(err))
		return nil, response.PaginationMeta{}, apperror.Wrap(err, apperror.CodeInternalError, "failed to list audit logs", apperror.ErrInternal.HTTPStatus)
	}

	out := make([]AuditLogResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	return out, response.NewPaginationMeta(total, page, size), nil
}

func (s *service) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteBefore(ctx, cutoff)
}
