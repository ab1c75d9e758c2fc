package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	// Birthday already passed this year
	assert.Equal(t, 16, Age(time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC), now))

	// Birthday not yet reached this year
	assert.Equal(t, 15, Age(time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC), now))

	// Birthday today counts as reached
	assert.Equal(t, 16, Age(time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC), now))
}

func TestIsMinor(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsMinor(time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsMinor(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsMinor(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestEndsInNightWindow(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2026, 6, 15, h, m, 0, 0, time.UTC)
	}

	assert.True(t, EndsInNightWindow(day(23, 0)), "23:00 is inside the window")
	assert.True(t, EndsInNightWindow(day(23, 30)))
	assert.True(t, EndsInNightWindow(day(0, 0)))
	assert.True(t, EndsInNightWindow(day(5, 59)))

	assert.False(t, EndsInNightWindow(day(6, 0)), "06:00 is outside the window")
	assert.False(t, EndsInNightWindow(day(22, 59)), "22:59 is outside the window")
	assert.False(t, EndsInNightWindow(day(14, 0)))
}

func TestExceedsMinorDuration(t *testing.T) {
	assert.False(t, ExceedsMinorDuration(6.0), "exactly six hours is allowed")
	assert.False(t, ExceedsMinorDuration(4.5))
	assert.True(t, ExceedsMinorDuration(6.5))
	assert.True(t, ExceedsMinorDuration(12))
}

func TestWithinDeclineLock(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	// Start 11h59m away: locked
	assert.True(t, WithinDeclineLock(now.Add(11*time.Hour+59*time.Minute), now))

	// Start 12h01m away: free to decline
	assert.False(t, WithinDeclineLock(now.Add(12*time.Hour+1*time.Minute), now))

	// Start already in the past is locked as well
	assert.True(t, WithinDeclineLock(now.Add(-1*time.Hour), now))
}

func TestHoursUntil(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	assert.InDelta(t, 2.5, HoursUntil(now.Add(150*time.Minute), now), 0.001)
	assert.InDelta(t, -1.0, HoursUntil(now.Add(-1*time.Hour), now), 0.001)
}
