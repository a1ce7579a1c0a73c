// Package clock provides the wall clock used to decide whether stores are open.
package clock

import (
	"time"

	"lowkey/config"
	"lowkey/internal/domain/service"
)

type systemClock struct {
	loc *time.Location
}

// New returns a clock reporting the current time in the configured time zone.
func New(cfg *config.Config) (service.Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return NewInLocation(loc), nil
}

// NewInLocation returns a clock reporting the current time in loc.
func NewInLocation(loc *time.Location) service.Clock {
	if loc == nil {
		loc = time.UTC
	}

	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always reports the same instant. Useful for tests and replays.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
