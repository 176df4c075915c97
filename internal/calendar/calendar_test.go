package calendar_test

import (
	"testing"
	"time"

	"go-leave/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func d(s string) time.Time {
	t, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func days(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = d(s)
	}
	return out
}

func TestWeekStart(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	assert.Equal(t, d("2025-06-09"), calendar.WeekStart(d("2025-06-11")))
	assert.Equal(t, d("2025-06-09"), calendar.WeekStart(d("2025-06-09")))
	assert.Equal(t, d("2025-06-09"), calendar.WeekStart(d("2025-06-15")))
	assert.Equal(t, d("2025-06-16"), calendar.WeekStart(d("2025-06-16")))
}

func TestSpanInclusive(t *testing.T) {
	assert.Equal(t, 1, calendar.SpanInclusive(d("2025-06-10"), d("2025-06-10")))
	assert.Equal(t, 3, calendar.SpanInclusive(d("2025-06-10"), d("2025-06-12")))
	assert.Equal(t, 0, calendar.SpanInclusive(d("2025-06-12"), d("2025-06-10")))
}

func TestExplicitDays(t *testing.T) {
	sel := calendar.NewExplicitDays(days("2025-06-14", "2025-06-10", "2025-06-14"))

	start, end := sel.Bounds()
	assert.Equal(t, d("2025-06-10"), start)
	assert.Equal(t, d("2025-06-14"), end)
	assert.Len(t, sel.Dates(), 2)
	assert.True(t, sel.Contains(d("2025-06-14")))
	assert.False(t, sel.Contains(d("2025-06-12")))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    calendar.Selection
		b    calendar.Selection
		want bool
	}{
		{
			name: "ranges intersect",
			a:    calendar.NewRange(d("2025-06-10"), d("2025-06-12")),
			b:    calendar.NewRange(d("2025-06-12"), d("2025-06-20")),
			want: true,
		},
		{
			name: "range contains range",
			a:    calendar.NewRange(d("2025-06-01"), d("2025-06-30")),
			b:    calendar.NewRange(d("2025-06-10"), d("2025-06-11")),
			want: true,
		},
		{
			name: "ranges adjacent",
			a:    calendar.NewRange(d("2025-06-10"), d("2025-06-12")),
			b:    calendar.NewRange(d("2025-06-13"), d("2025-06-14")),
			want: false,
		},
		{
			name: "single day inside explicit envelope gap",
			a:    calendar.NewExplicitDays(days("2025-06-10", "2025-06-20")),
			b:    calendar.NewRange(d("2025-06-14"), d("2025-06-14")),
			want: false,
		},
		{
			name: "explicit day inside range",
			a:    calendar.NewExplicitDays(days("2025-06-11")),
			b:    calendar.NewRange(d("2025-06-10"), d("2025-06-12")),
			want: true,
		},
		{
			name: "explicit vs explicit disjoint",
			a:    calendar.NewExplicitDays(days("2025-06-10", "2025-06-12")),
			b:    calendar.NewExplicitDays(days("2025-06-11")),
			want: false,
		},
		{
			name: "inverted range never overlaps",
			a:    calendar.NewRange(d("2025-06-12"), d("2025-06-10")),
			b:    calendar.NewRange(d("2025-06-01"), d("2025-06-30")),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calendar.Overlaps(tc.a, tc.b))
			assert.Equal(t, calendar.Overlaps(tc.a, tc.b), calendar.Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestWorkingDays(t *testing.T) {
	// Mon 2025-06-09 .. Sun 2025-06-15 with Wednesday blocked.
	sel := calendar.NewRange(d("2025-06-09"), d("2025-06-15"))
	blocked := func(day time.Time) bool { return day.Equal(d("2025-06-11")) }

	assert.Equal(t, 5, calendar.WorkingDays(sel, nil))
	assert.Equal(t, 4, calendar.WorkingDays(sel, blocked))

	weekend := calendar.NewExplicitDays(days("2025-06-14", "2025-06-15"))
	assert.Equal(t, 0, calendar.WorkingDays(weekend, nil))
}

func TestFromRecord(t *testing.T) {
	r := calendar.FromRecord(d("2025-06-10"), d("2025-06-12"), nil)
	_, isRange := r.(calendar.Range)
	assert.True(t, isRange)

	e := calendar.FromRecord(d("2025-06-10"), d("2025-06-12"), days("2025-06-10", "2025-06-12"))
	_, isExplicit := e.(calendar.ExplicitDays)
	assert.True(t, isExplicit)
	assert.False(t, e.Contains(d("2025-06-11")))
}
