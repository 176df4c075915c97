package holiday_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/holiday"
	holidayMock "go-leave/internal/holiday/mock"
	"go-leave/internal/validation"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func d(s string) time.Time {
	t, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleHolidays() []holiday.Holiday {
	return []holiday.Holiday{
		{ID: uuid.New(), Date: d("2025-12-25"), Name: "Christmas", IsBlocked: true, IsActive: true},
		{ID: uuid.New(), Date: d("2025-12-26"), Name: "Boxing Day", IsBlocked: false, IsActive: true},
		{ID: uuid.New(), Date: d("2025-12-31"), Name: "Year End Close", IsBlocked: true, IsActive: true},
	}
}

func TestHolidayService_Validate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := holidayMock.NewMockRepository(ctrl)
	repo.EXPECT().ListActiveByYear(gomock.Any(), 2025).Return(sampleHolidays(), nil).AnyTimes()

	svc := holiday.NewService(repo, nil)

	t.Run("range covering a blocked holiday", func(t *testing.T) {
		errs, err := svc.Validate(ctx, calendar.NewRange(d("2025-12-22"), d("2025-12-26")))
		assert.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, validation.CodeBlockedDates, errs[0].Code)
		assert.Contains(t, errs[0].Message, "2025-12-25 (Christmas)")
	})

	t.Run("explicit days skipping the blocked holiday", func(t *testing.T) {
		sel := calendar.NewExplicitDays([]time.Time{d("2025-12-24"), d("2025-12-26")})
		errs, err := svc.Validate(ctx, sel)
		assert.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("non blocked holiday is fine", func(t *testing.T) {
		errs, err := svc.Validate(ctx, calendar.NewRange(d("2025-12-26"), d("2025-12-26")))
		assert.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("lists every blocked day", func(t *testing.T) {
		blocked, err := svc.BlockedIn(ctx, calendar.NewRange(d("2025-12-20"), d("2025-12-31")))
		assert.NoError(t, err)
		assert.Len(t, blocked, 2)
	})
}

func TestHolidayService_SpansYears(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := holidayMock.NewMockRepository(ctrl)
	repo.EXPECT().ListActiveByYear(gomock.Any(), 2025).Return(sampleHolidays(), nil)
	repo.EXPECT().ListActiveByYear(gomock.Any(), 2026).Return([]holiday.Holiday{
		{ID: uuid.New(), Date: d("2026-01-01"), Name: "New Year", IsBlocked: true, IsActive: true},
	}, nil)

	svc := holiday.NewService(repo, nil)
	isBlocked, err := svc.BlockedLookup(ctx, calendar.NewRange(d("2025-12-29"), d("2026-01-02")))
	assert.NoError(t, err)
	assert.True(t, isBlocked(d("2025-12-31")))
	assert.True(t, isBlocked(d("2026-01-01")))
	assert.False(t, isBlocked(d("2026-01-02")))
}

func TestHolidayService_Cache(t *testing.T) {
	ctx := context.Background()
	key := holiday.GetHolidayYearKey(2025)
	holidays := sampleHolidays()
	payload, _ := json.Marshal(holiday.ToCache(holidays))

	t.Run("miss loads from repository and fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := holidayMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()

		rmock.ExpectGet(key).RedisNil()
		repo.EXPECT().ListActiveByYear(gomock.Any(), 2025).Return(holidays, nil)
		rmock.ExpectSet(key, payload, holiday.HolidayCacheTTL).SetVal("OK")

		svc := holiday.NewService(repo, rdb)
		resp, err := svc.ListByYear(ctx, 2025)
		assert.NoError(t, err)
		assert.Len(t, resp, 3)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := holidayMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()

		rmock.ExpectGet(key).SetVal(string(payload))

		svc := holiday.NewService(repo, rdb)
		resp, err := svc.ListByYear(ctx, 2025)
		assert.NoError(t, err)
		assert.Len(t, resp, 3)
		assert.Equal(t, "Christmas", resp[0].Name)
	})

	t.Run("negative redis down falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := holidayMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()

		rmock.ExpectGet(key).SetErr(errors.New("connection refused"))
		repo.EXPECT().ListActiveByYear(gomock.Any(), 2025).Return(holidays, nil)
		rmock.ExpectSet(key, payload, holiday.HolidayCacheTTL).SetErr(errors.New("connection refused"))

		svc := holiday.NewService(repo, rdb)
		resp, err := svc.ListByYear(ctx, 2025)
		assert.NoError(t, err)
		assert.Len(t, resp, 3)
	})

	t.Run("create invalidates the year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := holidayMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		rmock.ExpectDel(key).SetVal(1)

		svc := holiday.NewService(repo, rdb)
		resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2025-08-17", Name: "Independence Day", IsBlocked: true})
		assert.NoError(t, err)
		assert.Equal(t, "2025-08-17", resp.Date)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("negative invalid year", func(t *testing.T) {
		svc := holiday.NewService(holidayMock.NewMockRepository(gomock.NewController(t)), nil)
		_, err := svc.ListByYear(ctx, 10)
		assert.Error(t, err)
	})
}
