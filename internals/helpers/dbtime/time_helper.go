// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"sync/atomic"
	"time"
)

// DefaultTimezone is the congregation's local zone (WIT).
const DefaultTimezone = "Asia/Jayapura"

// fallback when the host has no tzdata
var wit = time.FixedZone("WIT", 9*60*60)

var appLoc atomic.Pointer[time.Location]

func init() {
	appLoc.Store(load(DefaultTimezone))
}

func load(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return wit
}

// SetTimezone switches the app location; an unknown name keeps the current one.
func SetTimezone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	appLoc.Store(loc)
	return nil
}

func Location() *time.Location {
	return appLoc.Load()
}

// Now returns the current time in the app location.
func Now() time.Time {
	return time.Now().In(Location())
}

// ToLocal converts t (usually UTC from the DB) to the app location.
// A zero t is returned as is.
func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}
