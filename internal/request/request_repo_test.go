package request

import (
	"context"
	"testing"
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/shared/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func day(s string) time.Time {
	d, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestRepo(t *testing.T) (Repository, *gorm.DB) {
	db := testutil.NewSQLiteDB(t, &LeaveType{}, &LeaveRequest{}, &LeaveSubstitute{}, &WorkFromHomeRequest{})
	return NewRepository(db), db
}

func leave(user uuid.UUID, typeID uuid.UUID, start, end string, status Status, subs ...uuid.UUID) *LeaveRequest {
	l := &LeaveRequest{
		ID:            uuid.New(),
		RequestNumber: "LV-" + uuid.NewString()[:8],
		UserID:        user,
		LeaveTypeID:   typeID,
		StartDate:     day(start),
		EndDate:       day(end),
		TotalDays:     decimal.NewFromInt(int64(calendar.SpanInclusive(day(start), day(end)))),
		Status:        status,
	}
	for _, s := range subs {
		l.Substitutes = append(l.Substitutes, LeaveSubstitute{RequestID: l.ID, SubstituteID: s})
	}
	return l
}

func wfh(user uuid.UUID, start, end string, status Status, days ...string) *WorkFromHomeRequest {
	w := &WorkFromHomeRequest{
		ID:            uuid.New(),
		RequestNumber: "WFH-" + uuid.NewString()[:8],
		UserID:        user,
		StartDate:     day(start),
		EndDate:       day(end),
		Location:      "Home office",
		Status:        status,
	}
	if len(days) > 0 {
		w.SelectedDates = days
	}
	return w
}

func TestRepository_FindRecords(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	user := uuid.New()
	typeID := uuid.New()

	l1 := leave(user, typeID, "2025-06-10", "2025-06-12", StatusPending)
	l2 := leave(user, typeID, "2025-07-01", "2025-07-02", StatusApproved)
	l3 := leave(user, typeID, "2025-06-11", "2025-06-11", StatusCancelled)
	w1 := wfh(user, "2025-06-09", "2025-06-13", StatusApproved, "2025-06-09", "2025-06-13")
	other := leave(uuid.New(), typeID, "2025-06-10", "2025-06-12", StatusPending)
	for _, l := range []*LeaveRequest{l1, l2, l3, other} {
		require.NoError(t, repo.CreateLeave(ctx, l))
	}
	require.NoError(t, repo.CreateWFH(ctx, w1))

	t.Run("active records in window across kinds", func(t *testing.T) {
		recs, err := repo.FindRecords(ctx, RecordFilter{
			UserID:   user,
			Statuses: ActiveStatuses,
			Start:    day("2025-06-01"),
			End:      day("2025-06-30"),
		})
		assert.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, l1.ID, recs[0].ID)
		assert.Equal(t, KindWFH, recs[1].Kind)
		_, explicit := recs[1].Selection().(calendar.ExplicitDays)
		assert.True(t, explicit)
	})

	t.Run("exclude id and kind filter", func(t *testing.T) {
		recs, err := repo.FindRecords(ctx, RecordFilter{
			UserID:    user,
			Kinds:     []Kind{KindLeave},
			Statuses:  ActiveStatuses,
			ExcludeID: &l1.ID,
		})
		assert.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, l2.ID, recs[0].ID)
	})
}

func TestRepository_NominationsBy(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	a, b := uuid.New(), uuid.New()
	typeID := uuid.New()

	nominated := leave(b, typeID, "2025-06-10", "2025-06-12", StatusPending, a)
	notNominated := leave(b, typeID, "2025-06-10", "2025-06-12", StatusApproved)
	require.NoError(t, repo.CreateLeave(ctx, nominated))
	require.NoError(t, repo.CreateLeave(ctx, notNominated))

	recs, err := repo.NominationsBy(ctx, b, a, day("2025-06-11"), day("2025-06-11"))
	assert.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, nominated.ID, recs[0].ID)

	recs, err = repo.NominationsBy(ctx, b, a, day("2025-06-20"), day("2025-06-21"))
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	l := leave(uuid.New(), uuid.New(), "2025-06-10", "2025-06-12", StatusPending)
	require.NoError(t, repo.CreateLeave(ctx, l))
	now := time.Now()

	ok, err := repo.TransitionStatus(ctx, KindLeave, l.ID, []Status{StatusPending}, StatusApproved, now)
	assert.NoError(t, err)
	assert.True(t, ok)

	// second writer loses
	ok, err = repo.TransitionStatus(ctx, KindLeave, l.ID, []Status{StatusPending}, StatusRejected, now)
	assert.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindLeaveByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	assert.NotNil(t, got.DecidedAt)
}

func TestRepository_HasRecentDuplicate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	user, typeID := uuid.New(), uuid.New()
	require.NoError(t, repo.CreateLeave(ctx, leave(user, typeID, "2025-06-10", "2025-06-12", StatusPending)))

	since := time.Now().Add(-5 * time.Minute)
	dup, err := repo.HasRecentDuplicate(ctx, KindLeave, user, &typeID, day("2025-06-10"), day("2025-06-12"), since)
	assert.NoError(t, err)
	assert.True(t, dup)

	otherType := uuid.New()
	dup, err = repo.HasRecentDuplicate(ctx, KindLeave, user, &otherType, day("2025-06-10"), day("2025-06-12"), since)
	assert.NoError(t, err)
	assert.False(t, dup)

	dup, err = repo.HasRecentDuplicate(ctx, KindWFH, user, nil, day("2025-06-10"), day("2025-06-12"), since)
	assert.NoError(t, err)
	assert.False(t, dup)
}

func TestRepository_LeaveDayTotals(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	user, typeID := uuid.New(), uuid.New()
	require.NoError(t, repo.CreateLeave(ctx, leave(user, typeID, "2025-03-03", "2025-03-05", StatusApproved)))
	require.NoError(t, repo.CreateLeave(ctx, leave(user, typeID, "2025-04-01", "2025-04-01", StatusApproved)))
	require.NoError(t, repo.CreateLeave(ctx, leave(user, typeID, "2025-05-01", "2025-05-02", StatusPending)))
	require.NoError(t, repo.CreateLeave(ctx, leave(user, typeID, "2025-05-05", "2025-05-05", StatusRejected)))
	require.NoError(t, repo.CreateLeave(ctx, leave(user, typeID, "2024-05-05", "2024-05-05", StatusApproved)))

	totals, err := repo.LeaveDayTotals(ctx, 2025)
	assert.NoError(t, err)
	require.Len(t, totals, 2)
	byStatus := map[Status]decimal.Decimal{}
	for _, tt := range totals {
		byStatus[tt.Status] = tt.Days
	}
	assert.True(t, byStatus[StatusApproved].Equal(decimal.NewFromInt(4)))
	assert.True(t, byStatus[StatusPending].Equal(decimal.NewFromInt(2)))
}

func TestRepository_ArchiveAndPurge(t *testing.T) {
	ctx := context.Background()
	repo, db := newTestRepo(t)
	user, typeID := uuid.New(), uuid.New()

	old := leave(user, typeID, "2022-01-03", "2022-01-04", StatusApproved)
	recent := leave(user, typeID, "2025-01-03", "2025-01-04", StatusApproved)
	cancelled := leave(user, typeID, "2025-02-03", "2025-02-04", StatusCancelled, uuid.New())
	longAgo := time.Now().AddDate(0, 0, -120)
	cancelled.CancelledAt = &longAgo
	for _, l := range []*LeaveRequest{old, recent, cancelled} {
		require.NoError(t, repo.CreateLeave(ctx, l))
	}

	n, err := repo.ArchiveEndedBefore(ctx, day("2023-06-01"))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.PurgeCancelledBefore(ctx, time.Now().AddDate(0, 0, -90))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var subs int64
	db.Model(&LeaveSubstitute{}).Count(&subs)
	assert.Equal(t, int64(0), subs)

	list, err := repo.ListLeavesByUser(ctx, user, nil)
	assert.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recent.ID, list[0].ID)
}
