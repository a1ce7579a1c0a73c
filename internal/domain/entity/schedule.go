package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	domainerrors "lowkey/internal/domain/errors"
)

// Weekdays is a set of days of the week, one bit per time.Weekday.
type Weekdays uint8

// AllWeek contains every day from Sunday to Saturday.
const AllWeek Weekdays = 1<<7 - 1

// NewWeekdays builds a set from the given days.
func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w |= 1 << uint(d)
	}

	return w
}

// Contains reports whether d is in the set.
func (w Weekdays) Contains(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}

	return w&(1<<uint(d)) != 0
}

// Days lists the set members from Sunday to Saturday.
func (w Weekdays) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			days = append(days, d)
		}
	}

	return days
}

// IsEmpty reports whether no day is set.
func (w Weekdays) IsEmpty() bool {
	return w&AllWeek == 0
}

// String joins the short day names with commas, e.g. "Mon,Tue".
func (w Weekdays) String() string {
	days := w.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}

	return strings.Join(names, ",")
}

// MarshalJSON encodes the set as a list of full day names.
func (w Weekdays) MarshalJSON() ([]byte, error) {
	days := w.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}

	return json.Marshal(names)
}

// UnmarshalJSON accepts a list of day names in any case, full or abbreviated.
func (w *Weekdays) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	parsed, err := parseWeekdayNames(names)
	if err != nil {
		return err
	}
	*w = parsed

	return nil
}

// ParseWeekdays parses a list such as "Mon,Tue;Friday" (separators: comma,
// semicolon, whitespace). The words "daily" and "all" mean AllWeek.
func ParseWeekdays(s string) (Weekdays, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '|'
	})

	return parseWeekdayNames(fields)
}

func parseWeekdayNames(names []string) (Weekdays, error) {
	var w Weekdays
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "daily" || name == "all" {
			w |= AllWeek

			continue
		}

		day, ok := lookupWeekday(name)
		if !ok {
			return 0, domainerrors.ErrInvalidOffer.WithDetails(fmt.Sprintf("unknown weekday %q", name))
		}
		w |= NewWeekdays(day)
	}

	return w, nil
}

func lookupWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || (len(name) >= 3 && strings.HasPrefix(full, name)) {
			return d, true
		}
	}

	return 0, false
}

// HourWindow is a half-open range of hours [Start, End) in local time.
// End may be 24 to mean "until midnight".
type HourWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Validate requires 0 <= Start < End <= 24.
func (h HourWindow) Validate() error {
	if h.Start < 0 || h.End > 24 || h.Start >= h.End {
		return domainerrors.ErrInvalidOffer.WithDetails(fmt.Sprintf("open hours must satisfy 0 <= start < end <= 24, got [%d, %d)", h.Start, h.End))
	}

	return nil
}

// Contains reports whether hour falls inside the window.
func (h HourWindow) Contains(hour int) bool {
	return h.Start <= hour && hour < h.End
}

// String formats the window as "09-21".
func (h HourWindow) String() string {
	return fmt.Sprintf("%02d-%02d", h.Start, h.End)
}
