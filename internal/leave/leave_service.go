package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-leave/internal/approval"
	"go-leave/internal/audit"
	"go-leave/internal/balance"
	"go-leave/internal/calendar"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/request"
	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/counter"
	"go-leave/internal/shared/response"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Validate(ctx context.Context, userID string, req CreateLeaveRequest) (ValidationResponse, error)
	Submit(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, userID, id string) (LeaveResponse, error)
	GetByID(ctx context.Context, userID, id string) (LeaveResponse, error)
	List(ctx context.Context, userID string, q ListLeavesQuery) ([]LeaveResponse, response.PaginationMeta, error)
}

type service struct {
	db        *gorm.DB
	requests  request.Repository
	counters  counter.Repository
	validator *Validator
	balances  balance.Service
	approvals approval.Service
	outbox    kafka.OutboxRepository
	recorder  audit.Recorder
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	requests request.Repository,
	counters counter.Repository,
	validator *Validator,
	balances balance.Service,
	approvals approval.Service,
	outbox kafka.OutboxRepository,
	recorder audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		requests:  requests,
		counters:  counters,
		validator: validator,
		balances:  balances,
		approvals: approvals,
		outbox:    outbox,
		recorder:  recorder,
		logger:    l,
	}
}

func (s *service) Validate(ctx context.Context, userID string, req CreateLeaveRequest) (ValidationResponse, error) {
	uid, in, errs, err := s.parseInput(userID, req)
	if err != nil {
		return ValidationResponse{}, err
	}
	if !errs.Empty() {
		return ValidationResponse{Valid: false, Errors: errs}, nil
	}

	a, err := s.validator.Assess(ctx, uid, in)
	if err != nil {
		return ValidationResponse{}, err
	}
	resp := ValidationResponse{Valid: a.Valid(), WorkingDays: a.WorkingDays, Errors: a.Errors}
	if resp.Errors == nil {
		resp.Errors = validation.Errors{}
	}
	return resp, nil
}

func (s *service) Submit(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("submit leave", zap.String("user_id", userID), zap.String("leave_type_id", req.LeaveTypeID))

	uid, in, errs, err := s.parseInput(userID, req)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !errs.Empty() {
		return LeaveResponse{}, errs.Err()
	}

	a, err := s.validator.Assess(ctx, uid, in)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !a.Valid() {
		logger.Warn("leave submission rejected", zap.String("user_id", userID), zap.Any("codes", a.Errors.Codes()))
		return LeaveResponse{}, a.Errors.Err()
	}

	start, end := in.Selection.Bounds()
	days := decimal.NewFromInt(int64(a.WorkingDays))
	lr := &request.LeaveRequest{
		ID:            uuid.New(),
		UserID:        uid,
		LeaveTypeID:   a.LeaveType.ID,
		StartDate:     start,
		EndDate:       end,
		SelectedDates: request.FormatDays(in.Selection),
		TotalDays:     days,
		Reason:        strings.TrimSpace(req.Reason),
		Status:        request.StatusPending,
	}
	for _, sid := range in.SubstituteIDs {
		lr.Substitutes = append(lr.Substitutes, request.LeaveSubstitute{RequestID: lr.ID, SubstituteID: sid})
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	number, err := request.NextNumber(ctx, s.counters.WithTx(tx), request.KindLeave, start.Year())
	if err != nil {
		logger.Error("allocate leave number failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	lr.RequestNumber = number

	if err := s.requests.WithTx(tx).CreateLeave(ctx, lr); err != nil {
		logger.Error("create leave failed", zap.String("user_id", userID), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if a.LeaveType.TracksBalance {
		key := balance.Key{UserID: uid, LeaveTypeID: a.LeaveType.ID, Year: start.Year()}
		if err := s.balances.Reserve(ctx, tx, key, days); err != nil {
			return LeaveResponse{}, err
		}
	}

	rec := lr.Record()
	first, err := s.approvals.Open(ctx, tx, rec)
	if err != nil {
		return LeaveResponse{}, err
	}

	event := lifecycleEvent(ctx, events.EventRequestSubmitted, rec, &uid, time.Now().UTC())
	if first != nil && first.ApproverID != nil {
		event.NextApproverID = first.ApproverID.String()
		event.Level = first.Level
	}
	if err := kafka.Enqueue(ctx, s.outbox, tx, events.RequestLifecycleTopic,
		"leave_request", lr.ID.String(), event.EventType, event); err != nil {
		logger.Error("enqueue leave submitted failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return LeaveResponse{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		ActorID:  &uid,
		Action:   audit.ActionRequestSubmitted,
		Entity:   audit.EntityLeaveRequest,
		EntityID: lr.ID.String(),
		New:      mapToResponse(*lr),
	})

	logger.Info("leave submitted",
		zap.String("request_id", lr.ID.String()),
		zap.String("request_number", lr.RequestNumber),
		zap.String("user_id", userID),
	)
	return mapToResponse(*lr), nil
}

func (s *service) Cancel(ctx context.Context, userID, id string) (LeaveResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("cancel leave", zap.String("user_id", userID), zap.String("request_id", id))

	uid, err := uuid.Parse(userID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}
	rid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, requesterrors.ErrInvalidRequestID
	}

	lr, err := s.requests.FindLeaveByID(ctx, rid)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if lr.UserID != uid {
		return LeaveResponse{}, requesterrors.ErrNotOwner
	}
	if _, err := request.Transition(lr.Status, request.ActionCancel); err != nil {
		return LeaveResponse{}, err
	}
	if lr.Status == request.StatusApproved && !lr.StartDate.After(s.validator.window.Today()) {
		return LeaveResponse{}, requesterrors.ErrAlreadyStarted
	}

	lt, err := s.requests.FindLeaveType(ctx, lr.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, mapLeaveTypeError(err)
	}

	before := mapToResponse(*lr)
	now := time.Now().UTC()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	ok, err := s.requests.WithTx(tx).TransitionStatus(ctx, request.KindLeave, lr.ID, []request.Status{lr.Status}, request.StatusCancelled, now)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !ok {
		return LeaveResponse{}, requesterrors.ErrStatusChanged
	}

	if lt.TracksBalance {
		key := balance.Key{UserID: lr.UserID, LeaveTypeID: lr.LeaveTypeID, Year: lr.StartDate.Year()}
		if lr.Status == request.StatusApproved {
			err = s.balances.Refund(ctx, tx, key, lr.TotalDays)
		} else {
			err = s.balances.Release(ctx, tx, key, lr.TotalDays)
		}
		if err != nil {
			return LeaveResponse{}, err
		}
	}

	if _, err := s.approvals.CancelForRequest(ctx, tx, request.KindLeave, lr.ID); err != nil {
		return LeaveResponse{}, err
	}

	prev := lr.Status
	lr.Status = request.StatusCancelled
	lr.CancelledAt = &now

	event := lifecycleEvent(ctx, events.EventRequestCancelled, lr.Record(), &uid, now)
	if err := kafka.Enqueue(ctx, s.outbox, tx, events.RequestLifecycleTopic,
		"leave_request", lr.ID.String(), event.EventType, event); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return LeaveResponse{}, err
	}

	after := mapToResponse(*lr)
	s.recorder.Record(ctx, audit.Entry{
		ActorID:  &uid,
		Action:   audit.ActionRequestCancelled,
		Entity:   audit.EntityLeaveRequest,
		EntityID: lr.ID.String(),
		Old:      before,
		New:      after,
		Metadata: map[string]any{"previous_status": string(prev)},
	})

	logger.Info("leave cancelled", zap.String("request_id", id), zap.String("previous_status", string(prev)))
	return after, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (LeaveResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}
	rid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, requesterrors.ErrInvalidRequestID
	}

	lr, err := s.requests.FindLeaveByID(ctx, rid)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if lr.UserID != uid {
		return LeaveResponse{}, requesterrors.ErrNotOwner
	}
	return mapToResponse(*lr), nil
}

func (s *service) List(ctx context.Context, userID string, q ListLeavesQuery) ([]LeaveResponse, response.PaginationMeta, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, response.PaginationMeta{}, leaveerrors.ErrInvalidUserID
	}

	var statuses []request.Status
	if q.Status != "" {
		statuses = []request.Status{request.Status(q.Status)}
	}

	rows, err := s.requests.ListLeavesByUser(ctx, uid, statuses)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list leaves failed", zap.String("user_id", userID), zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	out := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	items, meta := response.Paginate(out, q.Page, q.PageSize)
	return items, meta, nil
}

// parseInput converts the payload into typed input. Malformed ids are
// request errors; malformed dates are reported as validation errors.
func (s *service) parseInput(userID string, req CreateLeaveRequest) (uuid.UUID, LeaveInput, validation.Errors, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, LeaveInput{}, nil, leaveerrors.ErrInvalidUserID
	}
	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return uuid.Nil, LeaveInput{}, nil, leaveerrors.ErrInvalidLeaveTypeID
	}

	in := LeaveInput{LeaveTypeID: typeID}
	for _, raw := range req.SubstituteIDs {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, LeaveInput{}, nil, leaveerrors.ErrInvalidSubstituteID
		}
		in.SubstituteIDs = append(in.SubstituteIDs, sid)
	}

	sel, errs := request.ParseSelection(req.StartDate, req.EndDate, req.SelectedDates)
	if !errs.Empty() {
		return uid, in, errs, nil
	}
	in.Selection = sel
	return uid, in, nil, nil
}

func mapLeaveTypeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requesterrors.ErrLeaveTypeNotFound
	}
	return err
}

func lifecycleEvent(ctx context.Context, eventType string, rec request.Record, actor *uuid.UUID, at time.Time) events.RequestLifecycleEvent {
	e := events.RequestLifecycleEvent{
		EventType:     eventType,
		RequestID:     contextutil.GetRequestID(ctx),
		RequestKind:   string(rec.Kind),
		EntityID:      rec.ID.String(),
		RequestNumber: rec.Number,
		UserID:        rec.UserID.String(),
		Status:        string(rec.Status),
		StartDate:     calendar.Format(rec.StartDate),
		EndDate:       calendar.Format(rec.EndDate),
		OccurredAt:    at,
	}
	if actor != nil {
		e.ActorID = actor.String()
	}
	return e
}

func mapToResponse(r request.LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            r.ID.String(),
		RequestNumber: r.RequestNumber,
		UserID:        r.UserID.String(),
		LeaveTypeID:   r.LeaveTypeID.String(),
		StartDate:     calendar.Format(r.StartDate),
		EndDate:       calendar.Format(r.EndDate),
		SelectedDates: []string(r.SelectedDates),
		TotalDays:     r.TotalDays.StringFixed(2),
		Reason:        r.Reason,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, sid := range r.SubstituteIDs() {
		resp.SubstituteIDs = append(resp.SubstituteIDs, sid.String())
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	if r.CancelledAt != nil {
		v := r.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &v
	}
	return resp
}
