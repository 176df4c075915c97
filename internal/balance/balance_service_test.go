package balance_test

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/balance"
	balanceerrors "go-leave/internal/balance/errors"
	balanceMock "go-leave/internal/balance/mock"
	"go-leave/internal/request"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/testutil"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type ledgerFixture struct {
	db      *gorm.DB
	repo    balance.Repository
	source  *balanceMock.MockLedgerSource
	service balance.Service
}

func newLedger(t *testing.T) ledgerFixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t, &balance.LeaveBalance{})
	repo := balance.NewRepository(db)
	source := balanceMock.NewMockLedgerSource(gomock.NewController(t))
	return ledgerFixture{db: db, repo: repo, source: source, service: balance.NewService(repo, source)}
}

func (f ledgerFixture) seed(t *testing.T, key balance.Key, entitled, used, pending string) {
	t.Helper()
	b := &balance.LeaveBalance{
		ID:          uuid.New(),
		UserID:      key.UserID,
		LeaveTypeID: key.LeaveTypeID,
		Year:        key.Year,
		Entitled:    dec(entitled),
		Used:        dec(used),
		Pending:     dec(pending),
	}
	b.Recalculate()
	require.NoError(t, f.repo.Create(context.Background(), b))
}

func (f ledgerFixture) get(t *testing.T, key balance.Key) *balance.LeaveBalance {
	t.Helper()
	b, err := f.repo.Find(context.Background(), key)
	require.NoError(t, err)
	return b
}

func newKey() balance.Key {
	return balance.Key{UserID: uuid.New(), LeaveTypeID: uuid.New(), Year: 2026}
}

func TestBalanceService_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row reports BALANCE_NOT_FOUND", func(t *testing.T) {
		f := newLedger(t)
		errs, err := f.service.Check(ctx, newKey(), dec("1"))
		assert.NoError(t, err)
		assert.Equal(t, []validation.Code{validation.CodeBalanceNotFound}, errs.Codes())
	})

	t.Run("enough days passes", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "12", "2", "0")

		errs, err := f.service.Check(ctx, key, dec("10"))
		assert.NoError(t, err)
		assert.True(t, errs.Empty())
	})

	t.Run("shortfall reports insufficient and negative", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "12", "10", "1")

		errs, err := f.service.Check(ctx, key, dec("2"))
		assert.NoError(t, err)
		assert.Equal(t, []validation.Code{validation.CodeInsufficientBalance, validation.CodeNegativeBalance}, errs.Codes())
	})

	t.Run("five available against six working days", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "5", "0", "0")

		errs, err := f.service.Check(ctx, key, dec("6"))
		assert.NoError(t, err)
		assert.Equal(t, []validation.Code{validation.CodeInsufficientBalance, validation.CodeNegativeBalance}, errs.Codes())
	})

	t.Run("exactly enough leaves zero", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "5", "0", "0")

		errs, err := f.service.Check(ctx, key, dec("5"))
		assert.NoError(t, err)
		assert.True(t, errs.Empty())
	})

	t.Run("rounding hides a fractional deficit from the coarse check", func(t *testing.T) {
		repo := balanceMock.NewMockRepository(gomock.NewController(t))
		svc := balance.NewService(repo, nil)
		key := newKey()
		repo.EXPECT().Find(gomock.Any(), key).Return(&balance.LeaveBalance{Available: dec("1.999")}, nil)

		errs, err := svc.Check(ctx, key, dec("2"))
		assert.NoError(t, err)
		assert.Equal(t, []validation.Code{validation.CodeNegativeBalance}, errs.Codes())
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := balanceMock.NewMockRepository(gomock.NewController(t))
		svc := balance.NewService(repo, nil)
		repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		errs, err := svc.Check(ctx, newKey(), dec("1"))
		assert.Error(t, err)
		assert.Nil(t, errs)
	})
}

func TestBalanceService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve then commit moves days from pending to used", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "12", "0", "0")

		require.NoError(t, f.service.Reserve(ctx, f.db, key, dec("3")))
		b := f.get(t, key)
		assert.True(t, b.Pending.Equal(dec("3")))
		assert.True(t, b.Available.Equal(dec("9")))

		require.NoError(t, f.service.Commit(ctx, f.db, key, dec("3")))
		b = f.get(t, key)
		assert.True(t, b.Pending.IsZero())
		assert.True(t, b.Used.Equal(dec("3")))
		assert.True(t, b.Available.Equal(dec("9")))
	})

	t.Run("release returns pending days", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "12", "0", "4")

		require.NoError(t, f.service.Release(ctx, f.db, key, dec("4")))
		b := f.get(t, key)
		assert.True(t, b.Pending.IsZero())
		assert.True(t, b.Available.Equal(dec("12")))
	})

	t.Run("refund returns used days", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "12", "5", "0")

		require.NoError(t, f.service.Refund(ctx, f.db, key, dec("2")))
		b := f.get(t, key)
		assert.True(t, b.Used.Equal(dec("3")))
		assert.True(t, b.Available.Equal(dec("9")))
	})

	t.Run("release never drives pending below zero", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "12", "0", "1")

		require.NoError(t, f.service.Release(ctx, f.db, key, dec("3")))
		b := f.get(t, key)
		assert.True(t, b.Pending.IsZero())
		assert.True(t, b.Available.Equal(dec("12")))
	})

	t.Run("reserve beyond available is rejected", func(t *testing.T) {
		f := newLedger(t)
		key := newKey()
		f.seed(t, key, "2", "0", "0")

		err := f.service.Reserve(ctx, f.db, key, dec("3"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)

		b := f.get(t, key)
		assert.True(t, b.Pending.IsZero())
	})

	t.Run("missing row", func(t *testing.T) {
		f := newLedger(t)
		err := f.service.Commit(ctx, f.db, newKey(), dec("1"))
		assert.ErrorIs(t, err, balanceerrors.ErrBalanceNotFound)
	})
}

func TestBalanceService_Recompute(t *testing.T) {
	ctx := context.Background()
	f := newLedger(t)

	tracked := request.LeaveType{ID: uuid.New(), TracksBalance: true}
	unpaid := request.LeaveType{ID: uuid.New(), TracksBalance: false}
	user := uuid.New()

	drifting := balance.Key{UserID: user, LeaveTypeID: tracked.ID, Year: 2026}
	clean := balance.Key{UserID: uuid.New(), LeaveTypeID: tracked.ID, Year: 2026}
	untracked := balance.Key{UserID: user, LeaveTypeID: unpaid.ID, Year: 2026}

	f.seed(t, drifting, "12", "1", "0")
	f.seed(t, clean, "12", "2", "1.0005")
	f.seed(t, untracked, "0", "7", "0")

	f.source.EXPECT().ListActiveLeaveTypes(gomock.Any()).Return([]request.LeaveType{tracked, unpaid}, nil)
	f.source.EXPECT().LeaveDayTotals(gomock.Any(), 2026).Return([]request.DayTotal{
		{UserID: user, LeaveTypeID: tracked.ID, Status: request.StatusApproved, Days: dec("3")},
		{UserID: user, LeaveTypeID: tracked.ID, Status: request.StatusPending, Days: dec("2")},
		{UserID: clean.UserID, LeaveTypeID: tracked.ID, Status: request.StatusApproved, Days: dec("2")},
		{UserID: clean.UserID, LeaveTypeID: tracked.ID, Status: request.StatusPending, Days: dec("1")},
	}, nil)

	corrected, err := f.service.Recompute(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, corrected)

	b := f.get(t, drifting)
	assert.True(t, b.Used.Equal(dec("3")))
	assert.True(t, b.Pending.Equal(dec("2")))
	assert.True(t, b.Available.Equal(dec("7")))

	assert.True(t, f.get(t, untracked).Used.Equal(dec("7")))

	// A second pass over the same totals finds nothing left to correct.
	f.source.EXPECT().ListActiveLeaveTypes(gomock.Any()).Return([]request.LeaveType{tracked, unpaid}, nil)
	f.source.EXPECT().LeaveDayTotals(gomock.Any(), 2026).Return([]request.DayTotal{
		{UserID: user, LeaveTypeID: tracked.ID, Status: request.StatusApproved, Days: dec("3")},
		{UserID: user, LeaveTypeID: tracked.ID, Status: request.StatusPending, Days: dec("2")},
		{UserID: clean.UserID, LeaveTypeID: tracked.ID, Status: request.StatusApproved, Days: dec("2")},
		{UserID: clean.UserID, LeaveTypeID: tracked.ID, Status: request.StatusPending, Days: dec("1")},
	}, nil)

	corrected, err = f.service.Recompute(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, corrected)
	assert.True(t, f.get(t, drifting).Available.Equal(dec("7")))
}

func TestBalanceService_Provision(t *testing.T) {
	ctx := context.Background()
	f := newLedger(t)

	annual := request.LeaveType{ID: uuid.New(), TracksBalance: true, DefaultEntitlement: dec("12")}
	sick := request.LeaveType{ID: uuid.New(), TracksBalance: true, DefaultEntitlement: dec("6")}
	unpaid := request.LeaveType{ID: uuid.New(), TracksBalance: false}
	user := uuid.New()

	f.seed(t, balance.Key{UserID: user, LeaveTypeID: sick.ID, Year: 2026}, "8", "1", "0")
	f.source.EXPECT().ListActiveLeaveTypes(gomock.Any()).
		Return([]request.LeaveType{annual, sick, unpaid}, nil).Times(2)

	created, err := f.service.Provision(ctx, []uuid.UUID{user}, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	b := f.get(t, balance.Key{UserID: user, LeaveTypeID: annual.ID, Year: 2026})
	assert.True(t, b.Entitled.Equal(dec("12")))
	assert.True(t, b.Available.Equal(dec("12")))
	assert.True(t, f.get(t, balance.Key{UserID: user, LeaveTypeID: sick.ID, Year: 2026}).Entitled.Equal(dec("8")))

	created, err = f.service.Provision(ctx, []uuid.UUID{user}, 2026)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestBalanceService_LedgerYears(t *testing.T) {
	ctx := context.Background()
	f := newLedger(t)

	for _, year := range []int{2019, 2025, 2026, 2028, 2030} {
		key := newKey()
		key.Year = year
		f.seed(t, key, "12", "0", "0")
	}

	years, err := f.service.LedgerYears(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2026, 2027, 2028, 2030}, years)

	years, err = f.service.LedgerYears(ctx, 2040)
	require.NoError(t, err)
	assert.Equal(t, []int{2039, 2040, 2041}, years)
}

func TestBalanceService_ListForUser(t *testing.T) {
	ctx := context.Background()
	f := newLedger(t)
	key := newKey()
	f.seed(t, key, "12", "2.5", "1")

	got, err := f.service.ListForUser(ctx, key.UserID.String(), 2026)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "8.50", got[0].Available)

	_, err = f.service.ListForUser(ctx, "nope", 2026)
	assert.Error(t, err)

	_, err = f.service.ListForUser(ctx, key.UserID.String(), 0)
	assert.ErrorIs(t, err, balanceerrors.ErrInvalidYear)
}
