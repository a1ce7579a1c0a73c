package service

import "time"

// Clock supplies the current time in the catalog's local time zone.
type Clock interface {
	Now() time.Time
}
