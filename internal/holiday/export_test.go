package holiday

import (
	"time"

	"go-leave/internal/calendar"
)

// Test-only aliases for unexported identifiers used by the external test package.
var ToCache = toCache

const HolidayCacheTTL = holidayCacheTTL

// d is the date helper used by the in-package tests.
func d(s string) time.Time {
	t, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
