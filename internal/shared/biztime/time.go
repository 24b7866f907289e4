// Package biztime provides shop-timezone calculations. All storage and
// transport use UTC; the shop timezone only decides date boundaries — which
// month a ticket number belongs to, and how many days old a ticket is.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the shop's timezone when none is configured.
const DefaultTimezone = "Europe/Rome"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the shop timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the shop timezone location, initializing with the
// default when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// Now returns the current time in the shop timezone. Ticket numbering uses
// it so a ticket filed at 00:30 on the 1st lands in the new month's bucket
// regardless of the server's UTC clock.
func Now() time.Time {
	return time.Now().In(Location())
}

// DaysAgo returns the instant the given number of days before now, in the
// shop timezone. The old-tickets digest uses it as its age cutoff.
func DaysAgo(days int) time.Time {
	return Now().AddDate(0, 0, -days)
}

// StartOfDay returns midnight of t's day in the shop timezone, converted
// to UTC for queries.
func StartOfDay(t time.Time) time.Time {
	bizTime := t.In(Location())
	return time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location()).UTC()
}

// FormatDate formats a stored UTC time as DD/MM/YYYY in the shop timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format("02/01/2006")
}
