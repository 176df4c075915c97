package balance

import (
	"context"
	"errors"
	"sort"

	balanceerrors "go-leave/internal/balance/errors"
	"go-leave/internal/request"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// driftTolerance is the largest used/pending difference Recompute leaves alone.
var driftTolerance = decimal.NewFromFloat(0.001)

// LedgerSource exposes the request data the ledger is rebuilt from.
type LedgerSource interface {
	ListActiveLeaveTypes(ctx context.Context) ([]request.LeaveType, error)
	LeaveDayTotals(ctx context.Context, year int) ([]request.DayTotal, error)
}

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	// Check reports whether key can cover required days. Infrastructure
	// failures are returned as error, shortfalls as validation errors.
	Check(ctx context.Context, key Key, required decimal.Decimal) (validation.Errors, error)

	// Reserve, Commit, Release and Refund run inside the caller's transaction
	// and lock the balance row.
	Reserve(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error
	Commit(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error
	Release(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error
	Refund(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error

	Recompute(ctx context.Context, year int) (int, error)
	// LedgerYears lists the years reconciliation should recompute.
	LedgerYears(ctx context.Context, current int) ([]int, error)
	Provision(ctx context.Context, userIDs []uuid.UUID, year int) (int, error)
	ListForUser(ctx context.Context, userID string, year int) ([]BalanceResponse, error)
}

type service struct {
	repo   Repository
	source LedgerSource
	logger *zap.Logger
}

func NewService(repo Repository, source LedgerSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{repo: repo, source: source, logger: l}
}

func (s *service) Check(ctx context.Context, key Key, required decimal.Decimal) (validation.Errors, error) {
	b, err := s.repo.Find(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return validation.Single(validation.FieldLeaveType, validation.CodeBalanceNotFound,
			"No leave balance exists for this leave type and year"), nil
	}
	if err != nil {
		return nil, err
	}

	var errs validation.Errors
	if b.Available.Round(2).LessThan(required) {
		errs.Addf(validation.FieldLeaveType, validation.CodeInsufficientBalance,
			"Insufficient balance: %s days available, %s days required",
			b.Available.StringFixed(2), required.StringFixed(2))
	}
	// Evaluated on the exact amounts, so it also fires when rounding hides the deficit.
	if b.Available.Sub(required).IsNegative() {
		errs.Addf(validation.FieldLeaveType, validation.CodeNegativeBalance,
			"This request would leave a negative balance of %s days",
			b.Available.Sub(required).StringFixed(3))
	}
	return errs, nil
}

func (s *service) Reserve(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error {
	return s.adjust(ctx, tx, key, "reserve", func(b *LeaveBalance) error {
		b.Pending = b.Pending.Add(days)
		b.Recalculate()
		if b.Available.IsNegative() {
			return validation.Single(validation.FieldLeaveType, validation.CodeInsufficientBalance,
				"Insufficient balance for the requested days").Err()
		}
		return nil
	})
}

func (s *service) Commit(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error {
	return s.adjust(ctx, tx, key, "commit", func(b *LeaveBalance) error {
		b.Pending = s.clamp(ctx, key, "pending", b.Pending.Sub(days))
		b.Used = b.Used.Add(days)
		return nil
	})
}

func (s *service) Release(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error {
	return s.adjust(ctx, tx, key, "release", func(b *LeaveBalance) error {
		b.Pending = s.clamp(ctx, key, "pending", b.Pending.Sub(days))
		return nil
	})
}

func (s *service) Refund(ctx context.Context, tx *gorm.DB, key Key, days decimal.Decimal) error {
	return s.adjust(ctx, tx, key, "refund", func(b *LeaveBalance) error {
		b.Used = s.clamp(ctx, key, "used", b.Used.Sub(days))
		return nil
	})
}

func (s *service) adjust(ctx context.Context, tx *gorm.DB, key Key, op string, apply func(*LeaveBalance) error) error {
	logger := contextutil.GetLogger(ctx, s.logger)
	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindForUpdate(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return balanceerrors.ErrBalanceNotFound
	}
	if err != nil {
		logger.Error("failed to lock balance", zap.String("op", op), zap.String("user_id", key.UserID.String()), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to load balance", apperror.ErrInternal.HTTPStatus)
	}

	if err := apply(b); err != nil {
		return err
	}
	b.Recalculate()

	if err := qtx.Save(ctx, b); err != nil {
		logger.Error("failed to save balance", zap.String("op", op), zap.String("user_id", key.UserID.String()), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to save balance", apperror.ErrInternal.HTTPStatus)
	}

	logger.Debug("balance adjusted",
		zap.String("op", op),
		zap.String("user_id", key.UserID.String()),
		zap.String("leave_type_id", key.LeaveTypeID.String()),
		zap.Int("year", key.Year),
		zap.String("available", b.Available.StringFixed(2)),
	)
	return nil
}

func (s *service) clamp(ctx context.Context, key Key, column string, v decimal.Decimal) decimal.Decimal {
	if !v.IsNegative() {
		return v
	}
	contextutil.GetLogger(ctx, s.logger).Warn("balance column would go negative, clamped to zero",
		zap.String("column", column),
		zap.String("user_id", key.UserID.String()),
		zap.String("leave_type_id", key.LeaveTypeID.String()),
		zap.String("value", v.String()),
	)
	return decimal.Zero
}

type totals struct {
	used    decimal.Decimal
	pending decimal.Decimal
}

// Recompute rebuilds used and pending for year from active leave requests and
// saves every row drifting beyond the tolerance. It returns the number of
// corrected rows.
func (s *service) Recompute(ctx context.Context, year int) (int, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	types, err := s.source.ListActiveLeaveTypes(ctx)
	if err != nil {
		return 0, err
	}
	tracked := make(map[uuid.UUID]bool, len(types))
	for _, t := range types {
		tracked[t.ID] = t.TracksBalance
	}

	dayTotals, err := s.source.LeaveDayTotals(ctx, year)
	if err != nil {
		return 0, err
	}
	expected := make(map[Key]totals)
	for _, dt := range dayTotals {
		k := Key{UserID: dt.UserID, LeaveTypeID: dt.LeaveTypeID, Year: year}
		t := expected[k]
		switch dt.Status {
		case request.StatusApproved:
			t.used = t.used.Add(dt.Days)
		case request.StatusPending:
			t.pending = t.pending.Add(dt.Days)
		}
		expected[k] = t
	}

	balances, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return 0, err
	}

	corrected := 0
	for i := range balances {
		b := &balances[i]
		if !tracked[b.LeaveTypeID] {
			continue
		}
		want := expected[b.Key()]
		before := b.Available
		if !drifted(b.Used, want.used) && !drifted(b.Pending, want.pending) {
			b.Recalculate()
			if !drifted(before, b.Available) {
				continue
			}
		}

		logger.Warn("balance drift corrected",
			zap.String("user_id", b.UserID.String()),
			zap.String("leave_type_id", b.LeaveTypeID.String()),
			zap.String("used_before", b.Used.String()),
			zap.String("used_after", want.used.String()),
			zap.String("pending_before", b.Pending.String()),
			zap.String("pending_after", want.pending.String()),
		)
		b.Used = want.used
		b.Pending = want.pending
		b.Recalculate()
		if err := s.repo.Save(ctx, b); err != nil {
			return corrected, err
		}
		corrected++
	}
	return corrected, nil
}

// LedgerYears returns the previous, current and next year plus every later
// year that already holds balance rows. Requests are charged to the year they
// start in, so a December submission for January lands in next year's row.
func (s *service) LedgerYears(ctx context.Context, current int) ([]int, error) {
	stored, err := s.repo.YearsSince(ctx, current-1)
	if err != nil {
		return nil, err
	}
	seen := map[int]bool{current - 1: true, current: true, current + 1: true}
	years := []int{current - 1, current, current + 1}
	for _, y := range stored {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

func drifted(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().GreaterThan(driftTolerance)
}

// Provision creates missing balance rows for every active leave type that
// tracks balance, seeded with the type's default entitlement.
func (s *service) Provision(ctx context.Context, userIDs []uuid.UUID, year int) (int, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	types, err := s.source.ListActiveLeaveTypes(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, userID := range userIDs {
		for _, t := range types {
			if !t.TracksBalance {
				continue
			}
			key := Key{UserID: userID, LeaveTypeID: t.ID, Year: year}
			if _, err := s.repo.Find(ctx, key); err == nil {
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return created, err
			}

			b := &LeaveBalance{
				ID:          uuid.New(),
				UserID:      userID,
				LeaveTypeID: t.ID,
				Year:        year,
				Entitled:    t.DefaultEntitlement,
			}
			b.Recalculate()
			if err := s.repo.Create(ctx, b); err != nil {
				return created, err
			}
			created++
		}
	}

	if created > 0 {
		logger.Info("balances provisioned", zap.Int("year", year), zap.Int("created", created))
	}
	return created, nil
}

func (s *service) ListForUser(ctx context.Context, userID string, year int) ([]BalanceResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.InvalidField("user_id")
	}
	if year < 1900 || year > 9999 {
		return nil, balanceerrors.ErrInvalidYear
	}

	balances, err := s.repo.ListForUser(ctx, uid, year)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to list balances", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list balances", apperror.ErrInternal.HTTPStatus)
	}

	out := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = mapToResponse(b)
	}
	return out, nil
}
