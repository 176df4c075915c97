package approval_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-leave/internal/approval"
	approvalerrors "go-leave/internal/approval/errors"
	approvalMock "go-leave/internal/approval/mock"
	"go-leave/internal/audit"
	"go-leave/internal/balance"
	"go-leave/internal/calendar"
	"go-leave/internal/employee"
	employeeMock "go-leave/internal/employee/mock"
	"go-leave/internal/request"
	requesterrors "go-leave/internal/request/errors"
	requestMock "go-leave/internal/request/mock"
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

type fakeRecorder struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (r *fakeRecorder) Record(ctx context.Context, e audit.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *fakeRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Action
	}
	return out
}

type chainFixture struct {
	db        *gorm.DB
	svc       approval.Service
	approvals approval.Repository
	requests  request.Repository
	ledger    balance.Service
	balances  balance.Repository
	employees employee.Repository
	recorder  *fakeRecorder

	ceo, mgr, dev *employee.Employee
}

func newChain(t *testing.T, cfg approval.Config) *chainFixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t,
		&employee.Employee{},
		&request.LeaveType{},
		&request.LeaveRequest{},
		&request.LeaveSubstitute{},
		&request.WorkFromHomeRequest{},
		&approval.Approval{},
		&balance.LeaveBalance{},
	)

	f := &chainFixture{
		db:        db,
		approvals: approval.NewRepository(db),
		requests:  request.NewRepository(db),
		balances:  balance.NewRepository(db),
		employees: employee.NewRepository(db),
		recorder:  &fakeRecorder{},
	}
	f.ledger = balance.NewService(f.balances, f.requests)

	f.ceo = f.addEmployee(t, "ceo", nil, true)
	f.mgr = f.addEmployee(t, "mgr", f.ceo, true)
	f.dev = f.addEmployee(t, "dev", f.mgr, true)

	f.svc = approval.NewService(db, f.approvals, f.requests,
		employee.NewHierarchy(f.employees, employee.DefaultMaxHierarchyDepth),
		f.ledger, nil, f.recorder, cfg)
	return f
}

func (f *chainFixture) addEmployee(t *testing.T, name string, manager *employee.Employee, active bool) *employee.Employee {
	t.Helper()
	e := &employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: "EMP-" + name,
		FullName:       name,
		Email:          name + "@example.com",
		Role:           employee.RoleEmployee,
		IsActive:       active,
	}
	if manager != nil {
		e.ManagerID = &manager.ID
	}
	require.NoError(t, f.employees.Create(context.Background(), e))
	return e
}

// submitLeave stores a PENDING leave with its reservation and level-1 approval.
func (f *chainFixture) submitLeave(t *testing.T, owner *employee.Employee, approvals int) request.Record {
	t.Helper()
	ctx := context.Background()

	lt := &request.LeaveType{
		ID:                 uuid.New(),
		Code:               uuid.NewString()[:8],
		Name:               "Annual",
		DefaultEntitlement: decimal.NewFromInt(12),
		TracksBalance:      true,
		RequiredApprovals:  approvals,
		IsActive:           true,
	}
	require.NoError(t, f.db.Create(lt).Error)

	_, err := f.ledger.Provision(ctx, []uuid.UUID{owner.ID}, 2026)
	require.NoError(t, err)

	lr := &request.LeaveRequest{
		ID:            uuid.New(),
		RequestNumber: "LV-2026-" + uuid.NewString()[:6],
		UserID:        owner.ID,
		LeaveTypeID:   lt.ID,
		StartDate:     calendar.Date(2026, time.March, 2),
		EndDate:       calendar.Date(2026, time.March, 3),
		TotalDays:     decimal.NewFromInt(2),
		Status:        request.StatusPending,
	}
	require.NoError(t, f.requests.CreateLeave(ctx, lr))

	rec := lr.Record()
	key := balance.Key{UserID: owner.ID, LeaveTypeID: lt.ID, Year: 2026}
	require.NoError(t, f.ledger.Reserve(ctx, f.db, key, rec.TotalDays))
	_, err = f.svc.Open(ctx, f.db, rec)
	require.NoError(t, err)
	return rec
}

func (f *chainFixture) balanceOf(t *testing.T, rec request.Record) *balance.LeaveBalance {
	t.Helper()
	b, err := f.balances.Find(context.Background(), balance.Key{UserID: rec.UserID, LeaveTypeID: *rec.LeaveTypeID, Year: 2026})
	require.NoError(t, err)
	return b
}

func (f *chainFixture) statusOf(t *testing.T, rec request.Record) request.Status {
	t.Helper()
	got, err := f.requests.FindRecord(context.Background(), rec.Kind, rec.ID)
	require.NoError(t, err)
	return got.Status
}

func codesOf(t *testing.T, err error) []validation.Code {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	errs, ok := appErr.Details.(validation.Errors)
	require.True(t, ok)
	return errs.Codes()
}

func TestApprovalService_Open(t *testing.T) {
	f := newChain(t, approval.Config{})
	rec := f.submitLeave(t, f.dev, 1)

	chain, err := f.approvals.ListByRequest(context.Background(), request.KindLeave, rec.ID)
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, 1, chain[0].Level)
	assert.True(t, chain[0].AssignedTo(f.mgr.ID))
	assert.Equal(t, approval.StatusPending, chain[0].Status)
}

func TestApprovalService_SingleLevelApprove(t *testing.T) {
	ctx := context.Background()
	f := newChain(t, approval.Config{})
	rec := f.submitLeave(t, f.dev, 1)

	resp, err := f.svc.Approve(ctx, f.mgr.ID.String(), "leave", rec.ID.String(), "enjoy")
	require.NoError(t, err)
	assert.Equal(t, string(request.StatusApproved), resp.RequestStatus)
	assert.Equal(t, string(approval.StatusApproved), resp.ApprovalStatus)

	assert.Equal(t, request.StatusApproved, f.statusOf(t, rec))
	b := f.balanceOf(t, rec)
	assert.True(t, b.Used.Equal(decimal.NewFromInt(2)))
	assert.True(t, b.Pending.IsZero())
	assert.True(t, b.Available.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, []string{audit.ActionApprovalApproved, audit.ActionRequestApproved}, f.recorder.actions())

	t.Run("deciding again is an invalid transition", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, f.mgr.ID.String(), "leave", rec.ID.String(), "")
		assert.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
	})

	t.Run("requester acting on the decided request is still self approval", func(t *testing.T) {
		before := len(f.recorder.actions())

		_, err := f.svc.Reject(ctx, f.dev.ID.String(), "leave", rec.ID.String(), "")
		assert.ErrorIs(t, err, approvalerrors.ErrNotPermitted)
		assert.Equal(t, []validation.Code{validation.CodeSelfApproval}, codesOf(t, err))

		actions := f.recorder.actions()
		require.Len(t, actions, before+1)
		assert.Equal(t, audit.ActionApprovalDenied, actions[before])
		assert.Equal(t, request.StatusApproved, f.statusOf(t, rec))
	})
}

func TestApprovalService_TwoLevelApprove(t *testing.T) {
	ctx := context.Background()
	f := newChain(t, approval.Config{})
	rec := f.submitLeave(t, f.dev, 2)

	resp, err := f.svc.Approve(ctx, f.mgr.ID.String(), "LEAVE", rec.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, string(request.StatusPending), resp.RequestStatus)
	assert.Equal(t, 2, resp.Level)
	assert.Equal(t, f.ceo.ID.String(), resp.NextApproverID)
	assert.Equal(t, request.StatusPending, f.statusOf(t, rec))
	assert.True(t, f.balanceOf(t, rec).Pending.Equal(decimal.NewFromInt(2)))

	resp, err = f.svc.Approve(ctx, f.ceo.ID.String(), "leave", rec.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, string(request.StatusApproved), resp.RequestStatus)
	assert.True(t, f.balanceOf(t, rec).Used.Equal(decimal.NewFromInt(2)))

	history, err := f.svc.History(ctx, "leave", rec.ID.String())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "APPROVED", history[0].Status)
	assert.Equal(t, "APPROVED", history[1].Status)
}

func TestApprovalService_Reject(t *testing.T) {
	ctx := context.Background()
	f := newChain(t, approval.Config{})
	rec := f.submitLeave(t, f.dev, 1)

	resp, err := f.svc.Reject(ctx, f.mgr.ID.String(), "leave", rec.ID.String(), "busy sprint")
	require.NoError(t, err)
	assert.Equal(t, string(request.StatusRejected), resp.RequestStatus)

	assert.Equal(t, request.StatusRejected, f.statusOf(t, rec))
	b := f.balanceOf(t, rec)
	assert.True(t, b.Pending.IsZero())
	assert.True(t, b.Available.Equal(decimal.NewFromInt(12)))
}

func TestApprovalService_Permission(t *testing.T) {
	ctx := context.Background()
	f := newChain(t, approval.Config{})
	rec := f.submitLeave(t, f.dev, 1)

	t.Run("self approval is refused and audited", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, f.dev.ID.String(), "leave", rec.ID.String(), "")
		assert.ErrorIs(t, err, approvalerrors.ErrNotPermitted)
		assert.Equal(t, []validation.Code{validation.CodeSelfApproval}, codesOf(t, err))
		assert.Contains(t, f.recorder.actions(), audit.ActionApprovalDenied)
		assert.Equal(t, request.StatusPending, f.statusOf(t, rec))
	})

	t.Run("someone outside the pending level is refused", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, f.ceo.ID.String(), "leave", rec.ID.String(), "")
		assert.Equal(t, []validation.Code{validation.CodeNotInApprovalChain}, codesOf(t, err))
	})

	t.Run("direct permission check", func(t *testing.T) {
		errs, err := f.svc.ValidateApprovalPermission(ctx, f.mgr.ID, f.dev.ID, request.KindLeave, rec.ID)
		require.NoError(t, err)
		assert.True(t, errs.Empty())
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, f.mgr.ID.String(), "leave", uuid.NewString(), "")
		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})

	t.Run("bad kind", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, f.mgr.ID.String(), "sabbatical", rec.ID.String(), "")
		assert.ErrorIs(t, err, requesterrors.ErrInvalidKind)
	})
}

func TestApprovalService_ListPending(t *testing.T) {
	f := newChain(t, approval.Config{})
	rec := f.submitLeave(t, f.dev, 1)

	got, err := f.svc.ListPending(context.Background(), f.mgr.ID.String())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.Number, got[0].RequestNumber)
	assert.Equal(t, "2026-03-02", got[0].StartDate)
	assert.Equal(t, "2.00", got[0].TotalDays)

	got, err = f.svc.ListPending(context.Background(), f.ceo.ID.String())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestApprovalService_EscalateStale(t *testing.T) {
	ctx := context.Background()
	f := newChain(t, approval.Config{EscalateAfter: 72 * time.Hour})
	stale := f.submitLeave(t, f.dev, 1)
	fresh := f.submitLeave(t, f.dev, 1)

	require.NoError(t, f.db.Model(&approval.Approval{}).
		Where("request_id = ?", stale.ID).
		Update("created_at", time.Now().UTC().Add(-96*time.Hour)).Error)

	n, errs := f.svc.EscalateStale(ctx)
	assert.Empty(t, errs)
	assert.Equal(t, 1, n)

	chain, err := f.approvals.ListByRequest(ctx, request.KindLeave, stale.ID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, approval.StatusEscalated, chain[0].Status)
	require.NotNil(t, chain[0].EscalatedToID)
	assert.Equal(t, f.ceo.ID, *chain[0].EscalatedToID)
	assert.Equal(t, approval.StatusPending, chain[1].Status)
	assert.Equal(t, 2, chain[1].Level)
	assert.True(t, chain[1].AssignedTo(f.ceo.ID))

	chain, err = f.approvals.ListByRequest(ctx, request.KindLeave, fresh.ID)
	require.NoError(t, err)
	assert.Len(t, chain, 1)

	t.Run("the escalation target can now decide", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, f.ceo.ID.String(), "leave", stale.ID.String(), "")
		require.NoError(t, err)
		assert.Equal(t, request.StatusApproved, f.statusOf(t, stale))
	})
}

func TestApprovalService_EscalateFallsBackToExecutive(t *testing.T) {
	ctx := context.Background()
	f := newChain(t, approval.Config{})
	exec := f.addEmployee(t, "exec", nil, true)
	f.svc = approval.NewService(f.db, f.approvals, f.requests,
		employee.NewHierarchy(f.employees, 5), f.ledger, nil, f.recorder,
		approval.Config{ExecutiveFallback: &exec.ID})

	// mgr reports to ceo only; the ceo has nobody above.
	rec := f.submitLeave(t, f.mgr, 1)
	require.NoError(t, f.db.Model(&approval.Approval{}).
		Where("request_id = ?", rec.ID).
		Update("created_at", time.Now().UTC().Add(-100*time.Hour)).Error)

	n, errs := f.svc.EscalateStale(ctx)
	assert.Empty(t, errs)
	assert.Equal(t, 1, n)

	chain, err := f.approvals.ListByRequest(ctx, request.KindLeave, rec.ID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.True(t, chain[1].AssignedTo(exec.ID))
}

func TestApprovalService_RepairUnassigned(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the executive fallback", func(t *testing.T) {
		f := newChain(t, approval.Config{})
		exec := f.addEmployee(t, "exec", nil, true)
		loner := f.addEmployee(t, "loner", nil, true)
		rec := f.submitLeave(t, loner, 1)

		f.svc = approval.NewService(f.db, f.approvals, f.requests,
			employee.NewHierarchy(f.employees, 5), f.ledger, nil, f.recorder,
			approval.Config{ExecutiveFallback: &exec.ID})

		res, errs := f.svc.RepairUnassigned(ctx)
		assert.Empty(t, errs)
		assert.Equal(t, approval.RepairResult{Reassigned: 1}, res)

		chain, err := f.approvals.ListByRequest(ctx, request.KindLeave, rec.ID)
		require.NoError(t, err)
		assert.True(t, chain[0].AssignedTo(exec.ID))
	})

	t.Run("cancels when nobody can approve", func(t *testing.T) {
		f := newChain(t, approval.Config{})
		loner := f.addEmployee(t, "loner", nil, true)
		rec := f.submitLeave(t, loner, 1)

		res, errs := f.svc.RepairUnassigned(ctx)
		assert.Empty(t, errs)
		assert.Equal(t, approval.RepairResult{Cancelled: 1}, res)
		assert.Equal(t, request.StatusCancelled, f.statusOf(t, rec))
		assert.True(t, f.balanceOf(t, rec).Pending.IsZero())
		assert.Contains(t, f.recorder.actions(), audit.ActionRequestCancelled)
	})
}

func TestApprovalService_DeleteOrphans(t *testing.T) {
	ctx := context.Background()
	f := newChain(t, approval.Config{})
	rec := f.submitLeave(t, f.dev, 1)

	require.NoError(t, f.approvals.Create(ctx, &approval.Approval{
		ID:          uuid.New(),
		RequestKind: request.KindWFH,
		RequestID:   uuid.New(),
		Level:       1,
		Status:      approval.StatusPending,
	}))

	n, err := f.svc.DeleteOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	chain, err := f.approvals.ListByRequest(ctx, request.KindLeave, rec.ID)
	require.NoError(t, err)
	assert.Len(t, chain, 1)
}

func TestApprovalService_ConcurrentDecisionLoses(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	repo := approvalMock.NewMockRepository(ctrl)
	requests := requestMock.NewMockRepository(ctrl)
	directory := employeeMock.NewMockDirectory(ctrl)
	svc := approval.NewService(db, repo, requests, directory, nil, nil, &fakeRecorder{}, approval.Config{})

	approverID, requesterID, requestID := uuid.New(), uuid.New(), uuid.New()
	rec := &request.Record{Kind: request.KindWFH, ID: requestID, UserID: requesterID, Status: request.StatusPending}
	row := &approval.Approval{ID: uuid.New(), RequestKind: request.KindWFH, RequestID: requestID, Level: 1, ApproverID: &approverID, Status: approval.StatusPending}

	requests.EXPECT().FindRecord(gomock.Any(), request.KindWFH, requestID).Return(rec, nil)
	repo.EXPECT().FindPendingFor(gomock.Any(), request.KindWFH, requestID, approverID).Return(row, nil).Times(2)
	testutil.ExpectTx(t, sqlMock, false)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	requests.EXPECT().WithTx(gomock.Any()).Return(requests)
	repo.EXPECT().Decide(gomock.Any(), row.ID, approval.StatusApproved, "", gomock.Any()).Return(false, nil)

	_, err := svc.Approve(context.Background(), approverID.String(), "wfh", requestID.String(), "")
	assert.ErrorIs(t, err, approvalerrors.ErrNoLongerPending)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
