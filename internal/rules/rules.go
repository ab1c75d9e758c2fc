// Package rules is the static business-rules table shared by every
// component: age thresholds, minor shift restrictions, the decline lock
// window and tier thresholds. Pure lookup, no side effects.
package rules

import "time"

const (
	// Workers below this age are minors and subject to shift
	// visibility restrictions.
	MinorAgeThreshold = 16

	// Minors may not work shifts longer than this many hours.
	MinorMaxShiftHours = 6.0

	// Night window for minors: a shift may not end between 23:00
	// (inclusive) and 06:00 (exclusive).
	NightWindowStartHour = 23
	NightWindowEndHour   = 6

	// A hotel cannot decline an application once the shift start is
	// within this many hours.
	ApplicationLockHours = 12.0
)

// Tier thresholds in accumulated hours (worked for workers, hired for
// hotels): silver [0, 50), gold [50, 200), platinum [200, inf).
const (
	GoldMinHours     = 50.0
	PlatinumMinHours = 200.0
)

// Age returns full years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return years
}

func IsMinor(dob, now time.Time) bool {
	return Age(dob, now) < MinorAgeThreshold
}

// EndsInNightWindow reports whether a shift ending at end falls in the
// prohibited night window. The check is on the end hour only
// (endHour >= 23 || endHour < 6); overnight spans are handled by the
// separate duration rule, not here.
func EndsInNightWindow(end time.Time) bool {
	h := end.Hour()
	return h >= NightWindowStartHour || h < NightWindowEndHour
}

func ExceedsMinorDuration(totalHours float64) bool {
	return totalHours > MinorMaxShiftHours
}

// HoursUntil returns the wall-clock hours from now until t. All lock
// and window comparisons use one canonical zone (the server's local
// zone) rather than per-request zones.
func HoursUntil(t, now time.Time) float64 {
	return t.Sub(now).Hours()
}

// WithinDeclineLock reports whether the shift starting at start is
// already inside the decline lock window.
func WithinDeclineLock(start, now time.Time) bool {
	return HoursUntil(start, now) < ApplicationLockHours
}
