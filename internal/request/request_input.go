package request

import (
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/validation"
)

// DuplicateWindow is how far back an identical submission counts as a
// double click.
const DuplicateWindow = 5 * time.Minute

// ParseSelection turns the start/end/selected_dates triple of a submission
// into a calendar selection. When selected dates are given the selection is
// exactly those days and every one of them must fall inside start..end.
// A nil selection means the input was unusable and nothing else should be
// checked.
func ParseSelection(startRaw, endRaw string, selectedRaw []string) (calendar.Selection, validation.Errors) {
	var errs validation.Errors

	start, err := calendar.ParseDate(startRaw)
	if err != nil {
		errs.Add(validation.FieldStartDate, validation.CodeInvalidDateRange, "start date must be YYYY-MM-DD")
	}
	end, err := calendar.ParseDate(endRaw)
	if err != nil {
		errs.Add(validation.FieldEndDate, validation.CodeInvalidDateRange, "end date must be YYYY-MM-DD")
	}
	if !errs.Empty() {
		return nil, errs
	}

	if len(selectedRaw) == 0 {
		return calendar.NewRange(start, end), nil
	}

	days := make([]time.Time, 0, len(selectedRaw))
	for _, raw := range selectedRaw {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			errs.Addf(validation.FieldSelectedDates, validation.CodeInvalidSelectedDates,
				"%q is not a valid date", raw)
			continue
		}
		if d.Before(start) || d.After(end) {
			errs.Addf(validation.FieldSelectedDates, validation.CodeInvalidSelectedDates,
				"%s is outside %s..%s", calendar.Format(d), calendar.Format(start), calendar.Format(end))
			continue
		}
		days = append(days, d)
	}
	if !errs.Empty() {
		return nil, errs
	}
	return calendar.NewExplicitDays(days), nil
}

