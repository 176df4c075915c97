package calendar

import (
	"sort"
	"time"
)

// Selection is the set of days a request affects. It is either a contiguous
// Range or an explicit list of days; the explicit list is authoritative when
// present.
type Selection interface {
	Bounds() (start, end time.Time)
	Contains(day time.Time) bool
	Dates() []time.Time
	isSelection()
}

type Range struct {
	Start time.Time
	End   time.Time
}

func NewRange(start, end time.Time) Range {
	return Range{Start: Truncate(start), End: Truncate(end)}
}

func (r Range) Bounds() (time.Time, time.Time) { return r.Start, r.End }

func (r Range) Contains(day time.Time) bool {
	d := Truncate(day)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) Dates() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}
	out := make([]time.Time, 0, SpanInclusive(r.Start, r.End))
	for d := r.Start; !d.After(r.End); d = AddDays(d, 1) {
		out = append(out, d)
	}
	return out
}

func (Range) isSelection() {}

type ExplicitDays struct {
	Days []time.Time
}

// NewExplicitDays normalizes, sorts and de-duplicates days.
func NewExplicitDays(days []time.Time) ExplicitDays {
	seen := make(map[time.Time]struct{}, len(days))
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		d = Truncate(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return ExplicitDays{Days: out}
}

func (e ExplicitDays) Bounds() (time.Time, time.Time) {
	if len(e.Days) == 0 {
		return time.Time{}, time.Time{}
	}
	return e.Days[0], e.Days[len(e.Days)-1]
}

func (e ExplicitDays) Contains(day time.Time) bool {
	d := Truncate(day)
	i := sort.Search(len(e.Days), func(i int) bool { return !e.Days[i].Before(d) })
	return i < len(e.Days) && e.Days[i].Equal(d)
}

func (e ExplicitDays) Dates() []time.Time {
	out := make([]time.Time, len(e.Days))
	copy(out, e.Days)
	return out
}

func (ExplicitDays) isSelection() {}

// FromRecord rebuilds the selection stored on a request row.
func FromRecord(start, end time.Time, selected []time.Time) Selection {
	if len(selected) > 0 {
		return NewExplicitDays(selected)
	}
	return NewRange(start, end)
}

// Overlaps reports whether a and b share a calendar day. Two ranges compare by
// bounds; as soon as either side is explicit, membership is exact, so a single
// selected day never collides with the gaps of a wider envelope. The relation
// is symmetric.
func Overlaps(a, b Selection) bool {
	ra, aIsRange := a.(Range)
	rb, bIsRange := b.(Range)
	if aIsRange && bIsRange {
		if ra.End.Before(ra.Start) || rb.End.Before(rb.Start) {
			return false
		}
		return !(ra.End.Before(rb.Start) || ra.Start.After(rb.End))
	}
	return len(SharedDays(a, b)) > 0
}

// SharedDays lists the days present in both selections, ascending.
func SharedDays(a, b Selection) []time.Time {
	small, other := a, b
	if _, ok := a.(Range); ok {
		small, other = b, a
	}
	var out []time.Time
	for _, d := range small.Dates() {
		if other.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// WorkingDays counts days of sel that are not weekends and not rejected by
// isBlocked. A nil isBlocked only excludes weekends.
func WorkingDays(sel Selection, isBlocked func(time.Time) bool) int {
	n := 0
	for _, d := range sel.Dates() {
		if IsWeekend(d) {
			continue
		}
		if isBlocked != nil && isBlocked(d) {
			continue
		}
		n++
	}
	return n
}
