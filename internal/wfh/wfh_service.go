package wfh

import (
	"context"
	"strings"
	"time"

	"go-leave/internal/approval"
	"go-leave/internal/audit"
	"go-leave/internal/calendar"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/request"
	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/counter"
	"go-leave/internal/shared/response"
	"go-leave/internal/validation"
	wfherrors "go-leave/internal/wfh/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=wfh_service.go -destination=mock/wfh_service_mock.go -package=mock
type Service interface {
	Validate(ctx context.Context, userID string, req CreateWFHRequest) (ValidationResponse, error)
	Submit(ctx context.Context, userID string, req CreateWFHRequest) (WFHResponse, error)
	Cancel(ctx context.Context, userID, id string) (WFHResponse, error)
	GetByID(ctx context.Context, userID, id string) (WFHResponse, error)
	List(ctx context.Context, userID string, q ListWFHQuery) ([]WFHResponse, response.PaginationMeta, error)
}

type service struct {
	db        *gorm.DB
	requests  request.Repository
	counters  counter.Repository
	validator *Validator
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
	approvals approval.Service,
	outbox kafka.OutboxRepository,
	recorder audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("wfh.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wfh.service")
	}
	return &service{
		db:        db,
		requests:  requests,
		counters:  counters,
		validator: validator,
		approvals: approvals,
		outbox:    outbox,
		recorder:  recorder,
		logger:    l,
	}
}

func (s *service) Validate(ctx context.Context, userID string, req CreateWFHRequest) (ValidationResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ValidationResponse{}, wfherrors.ErrInvalidUserID
	}
	sel, errs := request.ParseSelection(req.StartDate, req.EndDate, req.SelectedDates)
	if !errs.Empty() {
		errs.Merge(ValidateLocation(req.Location))
		return ValidationResponse{Errors: errs}, nil
	}

	a, err := s.validator.Assess(ctx, uid, WFHInput{Selection: sel, Location: req.Location})
	if err != nil {
		return ValidationResponse{}, err
	}
	resp := ValidationResponse{Valid: a.Valid(), WorkingDays: a.WorkingDays, Errors: a.Errors}
	if resp.Errors == nil {
		resp.Errors = validation.Errors{}
	}
	return resp, nil
}

func (s *service) Submit(ctx context.Context, userID string, req CreateWFHRequest) (WFHResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("submit wfh", zap.String("user_id", userID))

	uid, err := uuid.Parse(userID)
	if err != nil {
		return WFHResponse{}, wfherrors.ErrInvalidUserID
	}
	sel, errs := request.ParseSelection(req.StartDate, req.EndDate, req.SelectedDates)
	if !errs.Empty() {
		errs.Merge(ValidateLocation(req.Location))
		return WFHResponse{}, errs.Err()
	}

	a, err := s.validator.Assess(ctx, uid, WFHInput{Selection: sel, Location: req.Location})
	if err != nil {
		return WFHResponse{}, err
	}
	if !a.Valid() {
		logger.Warn("wfh submission rejected", zap.String("user_id", userID), zap.Any("codes", a.Errors.Codes()))
		return WFHResponse{}, a.Errors.Err()
	}

	start, end := sel.Bounds()
	w := &request.WorkFromHomeRequest{
		ID:            uuid.New(),
		UserID:        uid,
		StartDate:     start,
		EndDate:       end,
		SelectedDates: request.FormatDays(sel),
		TotalDays:     decimal.NewFromInt(int64(a.WorkingDays)),
		Location:      strings.TrimSpace(req.Location),
		Reason:        strings.TrimSpace(req.Reason),
		Status:        request.StatusPending,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return WFHResponse{}, tx.Error
	}
	defer tx.Rollback()

	number, err := request.NextNumber(ctx, s.counters.WithTx(tx), request.KindWFH, start.Year())
	if err != nil {
		logger.Error("allocate wfh number failed", zap.Error(err))
		return WFHResponse{}, err
	}
	w.RequestNumber = number

	if err := s.requests.WithTx(tx).CreateWFH(ctx, w); err != nil {
		logger.Error("create wfh failed", zap.String("user_id", userID), zap.Error(err))
		return WFHResponse{}, mapRepositoryError(err)
	}

	rec := w.Record()
	first, err := s.approvals.Open(ctx, tx, rec)
	if err != nil {
		return WFHResponse{}, err
	}

	event := lifecycleEvent(ctx, events.EventRequestSubmitted, rec, &uid, time.Now().UTC())
	if first != nil && first.ApproverID != nil {
		event.NextApproverID = first.ApproverID.String()
		event.Level = first.Level
	}
	if err := kafka.Enqueue(ctx, s.outbox, tx, events.RequestLifecycleTopic,
		"wfh_request", w.ID.String(), event.EventType, event); err != nil {
		logger.Error("enqueue wfh submitted failed", zap.Error(err))
		return WFHResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return WFHResponse{}, err
	}

	resp := mapToResponse(*w)
	s.recorder.Record(ctx, audit.Entry{
		ActorID:  &uid,
		Action:   audit.ActionRequestSubmitted,
		Entity:   audit.EntityWFHRequest,
		EntityID: w.ID.String(),
		New:      resp,
	})

	logger.Info("wfh submitted",
		zap.String("request_id", w.ID.String()),
		zap.String("request_number", w.RequestNumber),
		zap.String("user_id", userID),
	)
	return resp, nil
}

func (s *service) Cancel(ctx context.Context, userID, id string) (WFHResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	w, uid, err := s.owned(ctx, userID, id)
	if err != nil {
		return WFHResponse{}, err
	}
	if _, err := request.Transition(w.Status, request.ActionCancel); err != nil {
		return WFHResponse{}, err
	}
	if w.Status == request.StatusApproved && !w.StartDate.After(s.validator.window.Today()) {
		return WFHResponse{}, requesterrors.ErrAlreadyStarted
	}

	before := mapToResponse(*w)
	now := time.Now().UTC()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return WFHResponse{}, tx.Error
	}
	defer tx.Rollback()

	ok, err := s.requests.WithTx(tx).TransitionStatus(ctx, request.KindWFH, w.ID, []request.Status{w.Status}, request.StatusCancelled, now)
	if err != nil {
		return WFHResponse{}, err
	}
	if !ok {
		return WFHResponse{}, requesterrors.ErrStatusChanged
	}
	if _, err := s.approvals.CancelForRequest(ctx, tx, request.KindWFH, w.ID); err != nil {
		return WFHResponse{}, err
	}

	prev := w.Status
	w.Status = request.StatusCancelled
	w.CancelledAt = &now

	event := lifecycleEvent(ctx, events.EventRequestCancelled, w.Record(), &uid, now)
	if err := kafka.Enqueue(ctx, s.outbox, tx, events.RequestLifecycleTopic,
		"wfh_request", w.ID.String(), event.EventType, event); err != nil {
		return WFHResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return WFHResponse{}, err
	}

	after := mapToResponse(*w)
	s.recorder.Record(ctx, audit.Entry{
		ActorID:  &uid,
		Action:   audit.ActionRequestCancelled,
		Entity:   audit.EntityWFHRequest,
		EntityID: w.ID.String(),
		Old:      before,
		New:      after,
		Metadata: map[string]any{"previous_status": string(prev)},
	})

	logger.Info("wfh cancelled", zap.String("request_id", id), zap.String("previous_status", string(prev)))
	return after, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (WFHResponse, error) {
	w, _, err := s.owned(ctx, userID, id)
	if err != nil {
		return WFHResponse{}, err
	}
	return mapToResponse(*w), nil
}

func (s *service) List(ctx context.Context, userID string, q ListWFHQuery) ([]WFHResponse, response.PaginationMeta, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, response.PaginationMeta{}, wfherrors.ErrInvalidUserID
	}

	var statuses []request.Status
	if q.Status != "" {
		statuses = []request.Status{request.Status(q.Status)}
	}
	rows, err := s.requests.ListWFHByUser(ctx, uid, statuses)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	out := make([]WFHResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	items, meta := response.Paginate(out, q.Page, q.PageSize)
	return items, meta, nil
}

func (s *service) owned(ctx context.Context, userID, id string) (*request.WorkFromHomeRequest, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, uuid.Nil, wfherrors.ErrInvalidUserID
	}
	rid, err := uuid.Parse(id)
	if err != nil {
		return nil, uuid.Nil, requesterrors.ErrInvalidRequestID
	}
	w, err := s.requests.FindWFHByID(ctx, rid)
	if err != nil {
		return nil, uuid.Nil, mapRepositoryError(err)
	}
	if w.UserID != uid {
		return nil, uuid.Nil, requesterrors.ErrNotOwner
	}
	return w, uid, nil
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

func mapToResponse(r request.WorkFromHomeRequest) WFHResponse {
	resp := WFHResponse{
		ID:            r.ID.String(),
		RequestNumber: r.RequestNumber,
		UserID:        r.UserID.String(),
		StartDate:     calendar.Format(r.StartDate),
		EndDate:       calendar.Format(r.EndDate),
		SelectedDates: []string(r.SelectedDates),
		TotalDays:     r.TotalDays.StringFixed(2),
		Location:      r.Location,
		Reason:        r.Reason,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
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
