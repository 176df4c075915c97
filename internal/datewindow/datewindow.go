package datewindow

import (
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/validation"
)

type Rules struct {
	MaxSpanDays       int
	MinNoticeDays     int
	ForbidCurrentWeek bool
}

func LeaveRules(maxSpanDays, minNoticeDays int) Rules {
	return Rules{MaxSpanDays: maxSpanDays, MinNoticeDays: minNoticeDays}
}

// WFHRules adds the next-week-or-later requirement on top of the span and
// notice rules.
func WFHRules(maxSpanDays, minNoticeDays int) Rules {
	return Rules{MaxSpanDays: maxSpanDays, MinNoticeDays: minNoticeDays, ForbidCurrentWeek: true}
}

type Validator struct {
	rules Rules
	now   func() time.Time
}

type Option func(*Validator)

func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func NewValidator(rules Rules, opts ...Option) *Validator {
	v := &Validator{rules: rules, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Rules() Rules { return v.rules }

// Today is the validator's notion of the current date.
func (v *Validator) Today() time.Time {
	return calendar.Truncate(v.now().UTC())
}

// Validate evaluates every rule and returns all failures.
func (v *Validator) Validate(sel calendar.Selection) validation.Errors {
	var errs validation.Errors
	today := v.Today()
	start, end := sel.Bounds()

	if start.Before(today) {
		errs.Addf(validation.FieldStartDate, validation.CodePastDate,
			"start date %s is in the past", calendar.Format(start))
	}

	validRange := !end.Before(start)
	if !validRange {
		errs.Add(validation.FieldEndDate, validation.CodeInvalidDateRange,
			"end date must not be before start date")
	}

	if validRange && v.rules.MaxSpanDays > 0 {
		if span := calendar.SpanInclusive(start, end); span > v.rules.MaxSpanDays {
			errs.Addf(validation.FieldEndDate, validation.CodeExceedsMaxDays,
				"request spans %d days, the maximum is %d", span, v.rules.MaxSpanDays)
		}
	}

	if v.rules.MinNoticeDays > 0 {
		earliest := calendar.AddDays(today, v.rules.MinNoticeDays)
		if start.Before(earliest) {
			errs.Addf(validation.FieldStartDate, validation.CodeInsufficientNotice,
				"requests need at least %d days notice, earliest start is %s",
				v.rules.MinNoticeDays, calendar.Format(earliest))
		}
	}

	if v.rules.ForbidCurrentWeek {
		if !calendar.WeekStart(start).After(calendar.WeekStart(today)) {
			errs.Add(validation.FieldStartDate, validation.CodeCurrentWeek,
				"work from home must start in a week after the current one")
		}
	}

	return errs
}
