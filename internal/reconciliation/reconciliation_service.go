package reconciliation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-leave/internal/approval"
	"go-leave/internal/audit"
	"go-leave/internal/balance"
	reconciliationerrors "go-leave/internal/reconciliation/errors"
	"go-leave/internal/request"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	NotificationRetention time.Duration
	AuditRetention        time.Duration
	CancelledRetention    time.Duration
	ArchiveAfter          time.Duration
}

func DefaultConfig() Config {
	return Config{
		NotificationRetention: 30 * 24 * time.Hour,
		AuditRetention:        months(6),
		CancelledRetention:    90 * 24 * time.Hour,
		ArchiveAfter:          months(24),
	}
}

// ConfigFromPolicy converts the day/month based settings of the environment.
func ConfigFromPolicy(notificationDays, auditMonths, cancelledDays, archiveMonths int) Config {
	cfg := DefaultConfig()
	if notificationDays > 0 {
		cfg.NotificationRetention = time.Duration(notificationDays) * 24 * time.Hour
	}
	if auditMonths > 0 {
		cfg.AuditRetention = months(auditMonths)
	}
	if cancelledDays > 0 {
		cfg.CancelledRetention = time.Duration(cancelledDays) * 24 * time.Hour
	}
	if archiveMonths > 0 {
		cfg.ArchiveAfter = months(archiveMonths)
	}
	return cfg
}

func months(n int) time.Duration { return time.Duration(n) * 30 * 24 * time.Hour }

type Result struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	PurgedCancelled     int64 `json:"purged_cancelled_requests"`
	OrphanApprovals     int64 `json:"orphan_approvals"`
	OrphanDocuments     int64 `json:"orphan_documents"`
	ReadNotifications   int64 `json:"read_notifications"`
	ExpiredTokens       int64 `json:"expired_tokens"`
	AuditLogs           int64 `json:"audit_logs"`
	BalancesProvisioned int   `json:"balances_provisioned"`
	BalancesCorrected   int   `json:"balances_corrected"`
	ApprovalsReassigned int   `json:"approvals_reassigned"`
	ApprovalsCancelled  int   `json:"approvals_cancelled"`
	ApprovalsEscalated  int   `json:"approvals_escalated"`
	Archived            int64 `json:"archived_requests"`

	Errors []string `json:"errors"`
}

// EmployeeSource lists the people who should hold balances.
type EmployeeSource interface {
	FindActiveIDs(ctx context.Context) ([]uuid.UUID, error)
}

//go:generate mockgen -source=reconciliation_service.go -destination=mock/reconciliation_service_mock.go -package=mock
type Service interface {
	// Run executes every category, waiting for a run already in progress.
	Run(ctx context.Context) Result
	// TryRun is Run for callers that should not queue behind another run.
	TryRun(ctx context.Context) (Result, error)
}

type service struct {
	repo      Repository
	requests  request.Repository
	approvals approval.Service
	balances  balance.Service
	audits    audit.Service
	employees EmployeeSource
	cfg       Config
	now       func() time.Time
	mu        sync.Mutex
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	requests request.Repository,
	approvals approval.Service,
	balances balance.Service,
	audits audit.Service,
	employees EmployeeSource,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("reconciliation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reconciliation.service")
	}
	return &service{
		repo:      repo,
		requests:  requests,
		approvals: approvals,
		balances:  balances,
		audits:    audits,
		employees: employees,
		cfg:       cfg,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Run(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run(ctx)
}

func (s *service) TryRun(ctx context.Context) (Result, error) {
	if !s.mu.TryLock() {
		return Result{}, reconciliationerrors.ErrAlreadyRunning
	}
	defer s.mu.Unlock()
	return s.run(ctx), nil
}

// run executes the categories in a fixed order. Cancelled requests are
// purged first so the orphan sweeps pick up their approvals and documents in
// the same run. A failing category is reported and the rest still run.
func (s *service) run(ctx context.Context) Result {
	logger := contextutil.GetLogger(ctx, s.logger)
	now := s.now().UTC()
	res := Result{StartedAt: now, Errors: []string{}}

	fail := func(category string, err error) {
		logger.Error("reconciliation category failed", zap.String("category", category), zap.Error(err))
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", category, err))
	}

	if n, err := s.requests.PurgeCancelledBefore(ctx, now.Add(-s.cfg.CancelledRetention)); err != nil {
		fail("purge_cancelled", err)
	} else {
		res.PurgedCancelled = n
	}

	if n, err := s.approvals.DeleteOrphans(ctx); err != nil {
		fail("orphan_approvals", err)
	} else {
		res.OrphanApprovals = n
	}

	if n, err := s.repo.DeleteOrphanDocuments(ctx); err != nil {
		fail("orphan_documents", err)
	} else {
		res.OrphanDocuments = n
	}

	if n, err := s.repo.DeleteReadNotificationsBefore(ctx, now.Add(-s.cfg.NotificationRetention)); err != nil {
		fail("read_notifications", err)
	} else {
		res.ReadNotifications = n
	}

	if n, err := s.repo.DeleteExpiredTokens(ctx, now); err != nil {
		fail("expired_tokens", err)
	} else {
		res.ExpiredTokens = n
	}

	if n, err := s.audits.PurgeBefore(ctx, now.Add(-s.cfg.AuditRetention)); err != nil {
		fail("audit_logs", err)
	} else {
		res.AuditLogs = n
	}

	s.reconcileBalances(ctx, now.Year(), &res, fail)

	repair, errs := s.approvals.RepairUnassigned(ctx)
	res.ApprovalsReassigned = repair.Reassigned
	res.ApprovalsCancelled = repair.Cancelled
	for _, err := range errs {
		fail("unassigned_approvals", err)
	}

	escalated, errs := s.approvals.EscalateStale(ctx)
	res.ApprovalsEscalated = escalated
	for _, err := range errs {
		fail("escalation", err)
	}

	if n, err := s.requests.ArchiveEndedBefore(ctx, now.Add(-s.cfg.ArchiveAfter)); err != nil {
		fail("archive", err)
	} else {
		res.Archived = n
	}

	res.FinishedAt = s.now().UTC()
	s.record(ctx, res)

	logger.Info("reconciliation finished",
		zap.Duration("took", res.FinishedAt.Sub(res.StartedAt)),
		zap.Int64("purged_cancelled", res.PurgedCancelled),
		zap.Int64("orphan_approvals", res.OrphanApprovals),
		zap.Int("balances_corrected", res.BalancesCorrected),
		zap.Int("approvals_escalated", res.ApprovalsEscalated),
		zap.Int("errors", len(res.Errors)),
	)
	return res
}

func (s *service) reconcileBalances(ctx context.Context, year int, res *Result, fail func(string, error)) {
	ids, err := s.employees.FindActiveIDs(ctx)
	if err != nil {
		fail("balance_provisioning", err)
	} else if n, err := s.balances.Provision(ctx, ids, year); err != nil {
		fail("balance_provisioning", err)
	} else {
		res.BalancesProvisioned = n
	}

	years, err := s.balances.LedgerYears(ctx, year)
	if err != nil {
		fail("balance_recompute", err)
		return
	}
	for _, y := range years {
		n, err := s.balances.Recompute(ctx, y)
		res.BalancesCorrected += n
		if err != nil {
			fail("balance_recompute", fmt.Errorf("year %d: %w", y, err))
		}
	}
}

func (s *service) record(ctx context.Context, res Result) {
	var actor *uuid.UUID
	if raw := contextutil.GetUserID(ctx); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			actor = &id
		}
	}
	s.audits.Record(ctx, audit.Entry{
		ActorID:  actor,
		Action:   audit.ActionReconciliationRun,
		Entity:   audit.EntityReconciliation,
		EntityID: res.StartedAt.Format(time.RFC3339),
		New:      res,
	})
}
