package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	approvalerrors "go-leave/internal/approval/errors"
	"go-leave/internal/audit"
	"go-leave/internal/balance"
	"go-leave/internal/calendar"
	"go-leave/internal/employee"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/request"
	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultEscalateAfter = 72 * time.Hour

type Config struct {
	EscalateAfter time.Duration
	// ExecutiveFallback receives escalations and repairs when the manager
	// chain has nobody left.
	ExecutiveFallback *uuid.UUID
}

type RepairResult struct {
	Reassigned int
	Cancelled  int
}

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	// Open creates the level-1 approval of a freshly submitted request inside tx.
	Open(ctx context.Context, tx *gorm.DB, rec request.Record) (*Approval, error)
	// CancelForRequest cancels the open approvals of a request inside tx.
	CancelForRequest(ctx context.Context, tx *gorm.DB, kind request.Kind, requestID uuid.UUID) (int64, error)

	ValidateApprovalPermission(ctx context.Context, approverID, requesterID uuid.UUID, kind request.Kind, requestID uuid.UUID) (validation.Errors, error)
	Approve(ctx context.Context, actorID, kind, requestID, comment string) (DecisionResponse, error)
	Reject(ctx context.Context, actorID, kind, requestID, comment string) (DecisionResponse, error)

	ListPending(ctx context.Context, approverID string) ([]PendingApprovalResponse, error)
	History(ctx context.Context, kind, requestID string) ([]ApprovalResponse, error)

	EscalateStale(ctx context.Context) (int, []error)
	RepairUnassigned(ctx context.Context) (RepairResult, []error)
	DeleteOrphans(ctx context.Context) (int64, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	requests  request.Repository
	directory employee.Directory
	balances  balance.Service
	outbox    kafka.OutboxRepository
	recorder  audit.Recorder
	cfg       Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	requests request.Repository,
	directory employee.Directory,
	balances balance.Service,
	outbox kafka.OutboxRepository,
	recorder audit.Recorder,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	if cfg.EscalateAfter <= 0 {
		cfg.EscalateAfter = DefaultEscalateAfter
	}
	return &service{
		db:        db,
		repo:      repo,
		requests:  requests,
		directory: directory,
		balances:  balances,
		outbox:    outbox,
		recorder:  recorder,
		cfg:       cfg,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Open(ctx context.Context, tx *gorm.DB, rec request.Record) (*Approval, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	approverID, err := s.resolveTarget(ctx, rec.UserID, rec.UserID, false)
	if err != nil {
		logger.Warn("approver lookup failed, chain left unassigned",
			zap.String("request_id", rec.ID.String()),
			zap.String("user_id", rec.UserID.String()),
			zap.Error(err),
		)
		approverID = nil
	}

	a := &Approval{
		ID:          uuid.New(),
		RequestKind: rec.Kind,
		RequestID:   rec.ID,
		Level:       1,
		ApproverID:  approverID,
		Status:      StatusPending,
	}
	if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
		logger.Error("create approval failed", zap.String("request_id", rec.ID.String()), zap.Error(err))
		return nil, err
	}
	if approverID == nil {
		logger.Warn("no approver available, approval awaits repair", zap.String("request_id", rec.ID.String()))
	}
	return a, nil
}

func (s *service) CancelForRequest(ctx context.Context, tx *gorm.DB, kind request.Kind, requestID uuid.UUID) (int64, error) {
	return s.repo.WithTx(tx).CancelPending(ctx, kind, requestID, s.now().UTC())
}

func (s *service) ValidateApprovalPermission(
	ctx context.Context,
	approverID, requesterID uuid.UUID,
	kind request.Kind,
	requestID uuid.UUID,
) (validation.Errors, error) {
	if approverID == requesterID {
		contextutil.GetLogger(ctx, s.logger).Warn("self approval attempt",
			zap.String("user_id", approverID.String()),
			zap.String("request_id", requestID.String()),
		)
		s.recorder.Record(ctx, audit.Entry{
			ActorID:  &approverID,
			Action:   audit.ActionApprovalDenied,
			Entity:   entityFor(kind),
			EntityID: requestID.String(),
			Metadata: map[string]any{"reason": string(validation.CodeSelfApproval)},
		})
		return validation.Single(validation.FieldApprover, validation.CodeSelfApproval,
			"You cannot approve your own request"), nil
	}

	_, err := s.repo.FindPendingFor(ctx, kind, requestID, approverID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return validation.Single(validation.FieldApprover, validation.CodeNotInApprovalChain,
			"You are not a pending approver for this request"), nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *service) Approve(ctx context.Context, actorID, kind, requestID, comment string) (DecisionResponse, error) {
	return s.decide(ctx, actorID, kind, requestID, comment, request.ActionApprove)
}

func (s *service) Reject(ctx context.Context, actorID, kind, requestID, comment string) (DecisionResponse, error) {
	return s.decide(ctx, actorID, kind, requestID, comment, request.ActionReject)
}

func (s *service) decide(
	ctx context.Context,
	actorRaw, kindRaw, requestIDRaw, comment string,
	action request.Action,
) (DecisionResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("approval decision requested",
		zap.String("actor_id", actorRaw),
		zap.String("kind", kindRaw),
		zap.String("request_id", requestIDRaw),
		zap.String("action", string(action)),
	)

	actorID, err := uuid.Parse(actorRaw)
	if err != nil {
		return DecisionResponse{}, apperror.InvalidField("user_id")
	}
	kind, err := request.ParseKind(kindRaw)
	if err != nil {
		return DecisionResponse{}, err
	}
	requestID, err := uuid.Parse(requestIDRaw)
	if err != nil {
		return DecisionResponse{}, requesterrors.ErrInvalidRequestID
	}

	rec, err := s.requests.FindRecord(ctx, kind, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DecisionResponse{}, requesterrors.ErrRequestNotFound
	}
	if err != nil {
		return DecisionResponse{}, err
	}

	// A requester is refused on their own request whatever state it is in.
	if actorID == rec.UserID {
		verrs, err := s.ValidateApprovalPermission(ctx, actorID, rec.UserID, kind, requestID)
		if err != nil {
			return DecisionResponse{}, err
		}
		return DecisionResponse{}, approvalerrors.ErrNotPermitted.WithDetails(verrs)
	}

	requestTo, err := request.Transition(rec.Status, action)
	if err != nil {
		logger.Warn("decision on request in wrong state",
			zap.String("request_id", requestIDRaw),
			zap.String("status", string(rec.Status)),
		)
		return DecisionResponse{}, err
	}

	verrs, err := s.ValidateApprovalPermission(ctx, actorID, rec.UserID, kind, requestID)
	if err != nil {
		return DecisionResponse{}, err
	}
	if !verrs.Empty() {
		return DecisionResponse{}, approvalerrors.ErrNotPermitted.WithDetails(verrs)
	}

	leaveType, err := s.leaveTypeOf(ctx, *rec)
	if err != nil {
		return DecisionResponse{}, err
	}

	// The next level's approver is resolved up front so the transaction only
	// touches approval, request and balance rows.
	var candidate *uuid.UUID
	if action == request.ActionApprove && leaveType != nil && leaveType.Approvals() > 1 {
		candidate, err = s.resolveTarget(ctx, actorID, rec.UserID, true, actorID)
		if err != nil {
			logger.Warn("next approver lookup failed, next level left unassigned",
				zap.String("actor_id", actorID.String()),
				zap.Error(err),
			)
			candidate = nil
		}
	}

	now := s.now().UTC()
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		logger.Error("decision begin tx failed", zap.Error(tx.Error))
		return DecisionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rtx := s.requests.WithTx(tx)

	row, err := qtx.FindPendingFor(ctx, kind, requestID, actorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DecisionResponse{}, approvalerrors.ErrNoLongerPending
	}
	if err != nil {
		return DecisionResponse{}, err
	}

	approvalTo, err := Transition(row.Status, action)
	if err != nil {
		return DecisionResponse{}, err
	}
	ok, err := qtx.Decide(ctx, row.ID, approvalTo, comment, now)
	if err != nil {
		return DecisionResponse{}, err
	}
	if !ok {
		logger.Warn("approval decided concurrently", zap.String("approval_id", row.ID.String()))
		return DecisionResponse{}, approvalerrors.ErrNoLongerPending
	}

	resp := DecisionResponse{
		RequestKind:    string(kind),
		RequestID:      requestID.String(),
		RequestStatus:  string(rec.Status),
		ApprovalStatus: string(approvalTo),
		Level:          row.Level,
	}
	eventType := events.EventRequestRejected
	var nextApprover *uuid.UUID
	final := true

	if action == request.ActionApprove {
		required := 1
		if leaveType != nil {
			required = leaveType.Approvals()
		}
		approved, err := qtx.CountByStatus(ctx, kind, requestID, StatusApproved)
		if err != nil {
			return DecisionResponse{}, err
		}
		final = int(approved) >= required
		eventType = events.EventRequestApproved

		if !final {
			eventType = events.EventApprovalAdvanced
			nextApprover = candidate
			next := &Approval{
				ID:          uuid.New(),
				RequestKind: kind,
				RequestID:   requestID,
				Level:       row.Level + 1,
				ApproverID:  nextApprover,
				Status:      StatusPending,
			}
			if err := qtx.Create(ctx, next); err != nil {
				return DecisionResponse{}, err
			}
			resp.Level = next.Level
			if nextApprover != nil {
				resp.NextApproverID = nextApprover.String()
			}
		}
	} else {
		if _, err := qtx.CancelPending(ctx, kind, requestID, now); err != nil {
			return DecisionResponse{}, err
		}
	}

	if final {
		ok, err := rtx.TransitionStatus(ctx, kind, requestID, []request.Status{request.StatusPending}, requestTo, now)
		if err != nil {
			return DecisionResponse{}, err
		}
		if !ok {
			return DecisionResponse{}, approvalerrors.ErrNoLongerPending
		}
		resp.RequestStatus = string(requestTo)

		if tracksBalance(leaveType) {
			key := balanceKey(*rec)
			if action == request.ActionApprove {
				err = s.balances.Commit(ctx, tx, key, rec.TotalDays)
			} else {
				err = s.balances.Release(ctx, tx, key, rec.TotalDays)
			}
			if err != nil {
				logger.Error("ledger update failed", zap.String("request_id", requestID.String()), zap.Error(err))
				return DecisionResponse{}, err
			}
		}
	}

	event := lifecycleEvent(ctx, eventType, *rec, resp.RequestStatus, &actorID, nextApprover, resp.Level, now)
	if err := s.enqueue(ctx, tx, event); err != nil {
		logger.Error("decision outbox persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("decision commit failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	approvalAction := audit.ActionApprovalApproved
	if action == request.ActionReject {
		approvalAction = audit.ActionApprovalRejected
	}
	s.recorder.Record(ctx, audit.Entry{
		ActorID:  &actorID,
		Action:   approvalAction,
		Entity:   audit.EntityApproval,
		EntityID: row.ID.String(),
		Old:      map[string]any{"status": row.Status},
		New:      map[string]any{"status": approvalTo, "comment": comment},
		Metadata: map[string]any{"request_kind": kind, "request_id": requestID.String(), "level": row.Level},
	})
	if final {
		requestAction := audit.ActionRequestApproved
		if action == request.ActionReject {
			requestAction = audit.ActionRequestRejected
		}
		s.recorder.Record(ctx, audit.Entry{
			ActorID:  &actorID,
			Action:   requestAction,
			Entity:   entityFor(kind),
			EntityID: requestID.String(),
			Old:      map[string]any{"status": rec.Status},
			New:      map[string]any{"status": requestTo},
		})
	}

	logger.Info("approval decision recorded",
		zap.String("request_id", requestID.String()),
		zap.String("approval_status", string(approvalTo)),
		zap.String("request_status", resp.RequestStatus),
	)
	return resp, nil
}

func (s *service) ListPending(ctx context.Context, approverID string) ([]PendingApprovalResponse, error) {
	id, err := uuid.Parse(approverID)
	if err != nil {
		return nil, apperror.InvalidField("user_id")
	}

	rows, err := s.repo.ListPendingForApprover(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]PendingApprovalResponse, 0, len(rows))
	for _, row := range rows {
		rec, err := s.requests.FindRecord(ctx, row.RequestKind, row.RequestID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, PendingApprovalResponse{
			ApprovalResponse: mapToResponse(row),
			RequestNumber:    rec.Number,
			RequesterID:      rec.UserID.String(),
			StartDate:        calendar.Format(rec.StartDate),
			EndDate:          calendar.Format(rec.EndDate),
			TotalDays:        rec.TotalDays.StringFixed(2),
		})
	}
	return out, nil
}

func (s *service) History(ctx context.Context, kindRaw, requestIDRaw string) ([]ApprovalResponse, error) {
	kind, err := request.ParseKind(kindRaw)
	if err != nil {
		return nil, err
	}
	requestID, err := uuid.Parse(requestIDRaw)
	if err != nil {
		return nil, requesterrors.ErrInvalidRequestID
	}

	rows, err := s.repo.ListByRequest(ctx, kind, requestID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, approvalerrors.ErrApprovalNotFound
	}

	out := make([]ApprovalResponse, len(rows))
	for i, row := range rows {
		out[i] = mapToResponse(row)
	}
	return out, nil
}

// EscalateStale hands every PENDING row older than the threshold to the next
// superior (or the executive fallback) and returns how many moved.
func (s *service) EscalateStale(ctx context.Context) (int, []error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	now := s.now().UTC()

	rows, err := s.repo.ListStalePending(ctx, now.Add(-s.cfg.EscalateAfter))
	if err != nil {
		return 0, []error{fmt.Errorf("list stale approvals: %w", err)}
	}

	var errs []error
	escalated := 0
	for _, row := range rows {
		rec, err := s.requests.FindRecord(ctx, row.RequestKind, row.RequestID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("escalate approval %s: %w", row.ID, err))
			continue
		}
		if rec.Status.Terminal() {
			if _, err := s.repo.CancelPending(ctx, row.RequestKind, row.RequestID, now); err != nil {
				errs = append(errs, fmt.Errorf("close approvals of decided request %s: %w", row.RequestID, err))
			}
			continue
		}

		target, err := s.resolveTarget(ctx, *row.ApproverID, rec.UserID, true, *row.ApproverID)
		if err != nil {
			errs = append(errs, fmt.Errorf("escalate approval %s: %w", row.ID, err))
			continue
		}
		if target == nil {
			logger.Warn("stale approval has nobody to escalate to", zap.String("approval_id", row.ID.String()))
			continue
		}

		moved, err := s.escalateOne(ctx, row, *rec, *target, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("escalate approval %s: %w", row.ID, err))
			continue
		}
		if moved {
			escalated++
		}
	}
	return escalated, errs
}

func (s *service) escalateOne(ctx context.Context, row Approval, rec request.Record, target uuid.UUID, now time.Time) (bool, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return false, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	ok, err := qtx.MarkEscalated(ctx, row.ID, target, now)
	if err != nil || !ok {
		return false, err
	}

	next := &Approval{
		ID:          uuid.New(),
		RequestKind: row.RequestKind,
		RequestID:   row.RequestID,
		Level:       row.Level + 1,
		ApproverID:  &target,
		Status:      StatusPending,
	}
	if err := qtx.Create(ctx, next); err != nil {
		return false, err
	}

	event := lifecycleEvent(ctx, events.EventApprovalEscalated, rec, string(rec.Status), nil, &target, next.Level, now)
	if err := s.enqueue(ctx, tx, event); err != nil {
		return false, err
	}
	if err := tx.Commit().Error; err != nil {
		return false, err
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:   audit.ActionApprovalEscalated,
		Entity:   audit.EntityApproval,
		EntityID: row.ID.String(),
		Old:      map[string]any{"status": row.Status, "approver_id": row.ApproverID},
		New:      map[string]any{"status": StatusEscalated, "escalated_to_id": target},
		Metadata: map[string]any{"next_approval_id": next.ID.String(), "level": next.Level},
	})
	contextutil.GetLogger(ctx, s.logger).Info("approval escalated",
		zap.String("approval_id", row.ID.String()),
		zap.String("escalated_to", target.String()),
	)
	return true, nil
}

// RepairUnassigned gives every approver-less PENDING row an approver, or
// cancels the request when nobody can approve it.
func (s *service) RepairUnassigned(ctx context.Context) (RepairResult, []error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	now := s.now().UTC()

	var result RepairResult
	rows, err := s.repo.ListUnassigned(ctx)
	if err != nil {
		return result, []error{fmt.Errorf("list unassigned approvals: %w", err)}
	}

	var errs []error
	for _, row := range rows {
		rec, err := s.requests.FindRecord(ctx, row.RequestKind, row.RequestID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("repair approval %s: %w", row.ID, err))
			continue
		}
		if rec.Status.Terminal() {
			if _, err := s.repo.CancelPending(ctx, row.RequestKind, row.RequestID, now); err != nil {
				errs = append(errs, fmt.Errorf("close approvals of decided request %s: %w", row.RequestID, err))
			}
			continue
		}

		chain, err := s.repo.ListByRequest(ctx, row.RequestKind, row.RequestID)
		if err != nil {
			errs = append(errs, fmt.Errorf("repair approval %s: %w", row.ID, err))
			continue
		}
		var decided []uuid.UUID
		for _, a := range chain {
			if a.Status == StatusApproved && a.ApproverID != nil {
				decided = append(decided, *a.ApproverID)
			}
		}

		target, err := s.resolveTarget(ctx, rec.UserID, rec.UserID, true, decided...)
		if err != nil {
			errs = append(errs, fmt.Errorf("repair approval %s: %w", row.ID, err))
			continue
		}

		if target != nil {
			ok, err := s.repo.AssignApprover(ctx, row.ID, *target)
			if err != nil {
				errs = append(errs, fmt.Errorf("assign approver to %s: %w", row.ID, err))
				continue
			}
			if ok {
				result.Reassigned++
				s.recorder.Record(ctx, audit.Entry{
					Action:   audit.ActionApprovalRepaired,
					Entity:   audit.EntityApproval,
					EntityID: row.ID.String(),
					New:      map[string]any{"approver_id": target.String()},
				})
			}
			continue
		}

		if err := s.cancelUnapprovable(ctx, row, *rec, now); err != nil {
			errs = append(errs, fmt.Errorf("cancel unapprovable request %s: %w", rec.ID, err))
			continue
		}
		result.Cancelled++
		logger.Warn("request cancelled, nobody can approve it", zap.String("request_id", rec.ID.String()))
	}
	return result, errs
}

func (s *service) cancelUnapprovable(ctx context.Context, row Approval, rec request.Record, now time.Time) error {
	leaveType, err := s.leaveTypeOf(ctx, rec)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if _, err := s.repo.WithTx(tx).CancelPending(ctx, rec.Kind, rec.ID, now); err != nil {
		return err
	}
	ok, err := s.requests.WithTx(tx).TransitionStatus(ctx, rec.Kind, rec.ID,
		[]request.Status{request.StatusPending}, request.StatusCancelled, now)
	if err != nil {
		return err
	}
	if !ok {
		return requesterrors.ErrStatusChanged
	}
	if tracksBalance(leaveType) {
		if err := s.balances.Release(ctx, tx, balanceKey(rec), rec.TotalDays); err != nil {
			return err
		}
	}

	event := lifecycleEvent(ctx, events.EventRequestCancelled, rec, string(request.StatusCancelled), nil, nil, row.Level, now)
	if err := s.enqueue(ctx, tx, event); err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:   audit.ActionRequestCancelled,
		Entity:   entityFor(rec.Kind),
		EntityID: rec.ID.String(),
		Old:      map[string]any{"status": rec.Status},
		New:      map[string]any{"status": request.StatusCancelled},
		Metadata: map[string]any{"reason": "no approver available"},
	})
	return nil
}

func (s *service) DeleteOrphans(ctx context.Context) (int64, error) {
	return s.repo.DeleteOrphans(ctx)
}

// resolveTarget returns the first active superior of from that is neither the
// requester nor excluded. With fallback set, the configured executive is used
// when the chain runs out.
func (s *service) resolveTarget(ctx context.Context, from, requesterID uuid.UUID, fallback bool, exclude ...uuid.UUID) (*uuid.UUID, error) {
	skip := append([]uuid.UUID{requesterID}, exclude...)
	next, err := s.directory.NextApprover(ctx, from, skip...)
	if err != nil {
		return nil, err
	}
	if next != nil {
		id := next.ID
		return &id, nil
	}

	if !fallback || s.cfg.ExecutiveFallback == nil {
		return nil, nil
	}
	exec := *s.cfg.ExecutiveFallback
	for _, id := range skip {
		if id == exec {
			return nil, nil
		}
	}
	return &exec, nil
}

func (s *service) leaveTypeOf(ctx context.Context, rec request.Record) (*request.LeaveType, error) {
	if rec.Kind != request.KindLeave || rec.LeaveTypeID == nil {
		return nil, nil
	}
	lt, err := s.requests.FindLeaveType(ctx, *rec.LeaveTypeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, requesterrors.ErrLeaveTypeNotFound
	}
	return lt, err
}

func (s *service) enqueue(ctx context.Context, tx *gorm.DB, event events.RequestLifecycleEvent) error {
	return kafka.Enqueue(ctx, s.outbox, tx, events.RequestLifecycleTopic,
		strings.ToLower(event.RequestKind)+"_request", event.EntityID, event.EventType, event)
}

func tracksBalance(lt *request.LeaveType) bool {
	return lt != nil && lt.TracksBalance
}

// balanceKey attributes the whole request to the year it starts in.
func balanceKey(rec request.Record) balance.Key {
	return balance.Key{UserID: rec.UserID, LeaveTypeID: *rec.LeaveTypeID, Year: rec.StartDate.Year()}
}

func entityFor(kind request.Kind) string {
	if kind == request.KindWFH {
		return audit.EntityWFHRequest
	}
	return audit.EntityLeaveRequest
}

func lifecycleEvent(
	ctx context.Context,
	eventType string,
	rec request.Record,
	status string,
	actor, next *uuid.UUID,
	level int,
	at time.Time,
) events.RequestLifecycleEvent {
	e := events.RequestLifecycleEvent{
		EventType:     eventType,
		RequestID:     contextutil.GetRequestID(ctx),
		RequestKind:   string(rec.Kind),
		EntityID:      rec.ID.String(),
		RequestNumber: rec.Number,
		UserID:        rec.UserID.String(),
		Status:        status,
		Level:         level,
		StartDate:     calendar.Format(rec.StartDate),
		EndDate:       calendar.Format(rec.EndDate),
		OccurredAt:    at,
	}
	if actor != nil {
		e.ActorID = actor.String()
	}
	if next != nil {
		e.NextApproverID = next.String()
	}
	return e
}
