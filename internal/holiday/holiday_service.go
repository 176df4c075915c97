package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-leave/internal/calendar"
	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	HolidayYearKeyPrefix = "holidays:year:"
	holidayCacheTTL      = time.Hour
)

func GetHolidayYearKey(year int) string {
	return HolidayYearKeyPrefix + strconv.Itoa(year)
}

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	// BlockedIn returns the active blocked holidays falling on days of sel.
	BlockedIn(ctx context.Context, sel calendar.Selection) ([]BlockedDate, error)
	// Validate reports BLOCKED_DATES when sel touches a blocked holiday.
	Validate(ctx context.Context, sel calendar.Selection) (validation.Errors, error)
	// BlockedLookup returns a predicate for the working-day calculator.
	BlockedLookup(ctx context.Context, sel calendar.Selection) (func(time.Time) bool, error)
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) BlockedIn(ctx context.Context, sel calendar.Selection) ([]BlockedDate, error) {
	start, end := sel.Bounds()
	if end.Before(start) {
		return nil, nil
	}

	var out []BlockedDate
	for year := start.Year(); year <= end.Year(); year++ {
		holidays, err := s.yearHolidays(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, h := range holidays {
			if h.IsBlocked && sel.Contains(h.Date) {
				out = append(out, BlockedDate{Date: h.Date, Name: h.Name})
			}
		}
	}
	return out, nil
}

func (s *service) Validate(ctx context.Context, sel calendar.Selection) (validation.Errors, error) {
	blocked, err := s.BlockedIn(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(blocked) == 0 {
		return nil, nil
	}

	parts := make([]string, len(blocked))
	for i, b := range blocked {
		parts[i] = fmt.Sprintf("%s (%s)", calendar.Format(b.Date), b.Name)
	}
	return validation.Single(validation.FieldStartDate, validation.CodeBlockedDates,
		"requested days include blocked holidays: "+strings.Join(parts, ", ")), nil
}

func (s *service) BlockedLookup(ctx context.Context, sel calendar.Selection) (func(time.Time) bool, error) {
	blocked, err := s.BlockedIn(ctx, sel)
	if err != nil {
		return nil, err
	}
	set := make(map[time.Time]struct{}, len(blocked))
	for _, b := range blocked {
		set[calendar.Truncate(b.Date)] = struct{}{}
	}
	return func(day time.Time) bool {
		_, ok := set[calendar.Truncate(day)]
		return ok
	}, nil
}

func (s *service) ListByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 1970 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}
	holidays, err := s.yearHolidays(ctx, year)
	if err != nil {
		return nil, err
	}
	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapToResponse(h)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDate
	}

	h := &Holiday{
		ID:        uuid.New(),
		Date:      date,
		Name:      req.Name,
		IsBlocked: req.IsBlocked,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return HolidayResponse{}, holidayerrors.ErrHolidayExists
		}
		s.logger.Error("create holiday persist failed", zap.String("request_id", rid), zap.Error(err))
		return HolidayResponse{}, err
	}

	s.invalidate(ctx, date.Year())
	s.logger.Info("create holiday success",
		zap.String("request_id", rid),
		zap.String("holiday_id", h.ID.String()),
		zap.String("date", req.Date),
	)
	return mapToResponse(*h), nil
}

// yearHolidays reads one year's active holidays through the redis cache.
// Cache failures degrade to a database read.
func (s *service) yearHolidays(ctx context.Context, year int) ([]Holiday, error) {
	key := GetHolidayYearKey(year)

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var cached []cachedHoliday
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return fromCache(cached), nil
			}
			s.logger.Warn("holiday cache decode failed", zap.String("key", key))
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("holiday cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		holidays, err := s.repo.ListActiveByYear(ctx, year)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			payload, err := json.Marshal(toCache(holidays))
			if err == nil {
				if err := s.rdb.Set(ctx, key, payload, holidayCacheTTL).Err(); err != nil {
					s.logger.Warn("holiday cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return holidays, nil
	})
	if err != nil {
		s.logger.Error("list holidays failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return v.([]Holiday), nil
}

func (s *service) invalidate(ctx context.Context, year int) {
	if s.rdb == nil {
		return
	}
	key := GetHolidayYearKey(year)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate holiday cache", zap.String("key", key), zap.Error(err))
	}
}

func toCache(holidays []Holiday) []cachedHoliday {
	out := make([]cachedHoliday, len(holidays))
	for i, h := range holidays {
		out[i] = cachedHoliday{
			ID:        h.ID.String(),
			Date:      calendar.Format(h.Date),
			Name:      h.Name,
			IsBlocked: h.IsBlocked,
		}
	}
	return out
}

func fromCache(cached []cachedHoliday) []Holiday {
	out := make([]Holiday, 0, len(cached))
	for _, c := range cached {
		date, err := calendar.ParseDate(c.Date)
		if err != nil {
			continue
		}
		id, _ := uuid.Parse(c.ID)
		out = append(out, Holiday{ID: id, Date: date, Name: c.Name, IsBlocked: c.IsBlocked, IsActive: true})
	}
	return out
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:        h.ID.String(),
		Date:      calendar.Format(h.Date),
		Name:      h.Name,
		IsBlocked: h.IsBlocked,
		IsActive:  h.IsActive,
	}
}
