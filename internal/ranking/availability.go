package ranking

import (
	"time"

	"lowkey/internal/domain/entity"
)

// IsOpen reports whether a store with the given schedule is open at the
// moment at. The hour window is half-open, so a 9-21 store is closed at 21:00.
// at must already be in the store's local time.
func IsOpen(days entity.Weekdays, hours entity.HourWindow, at time.Time) bool {
	return days.Contains(at.Weekday()) && hours.Contains(at.Hour())
}
