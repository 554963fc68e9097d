package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mustDate builds a local timestamp for scheduling tests.
// 2026-08-03 is a Monday.
func mustDate(day, hour, minute, second int) time.Time {
	return time.Date(2026, time.August, day, hour, minute, second, 0, time.Local)
}

// TestNextFireTime_Once verifies today-or-tomorrow resolution for single-shot alarms.
func TestNextFireTime_Once(t *testing.T) {
	t.Parallel()

	now := mustDate(3, 10, 0, 0) // Monday 10:00:00

	// Later today.
	got := NextFireTime(18, 30, nil, now)
	require.Equal(t, mustDate(3, 18, 30, 0), got)

	// Already passed, rolls to tomorrow.
	got = NextFireTime(7, 0, nil, now)
	require.Equal(t, mustDate(4, 7, 0, 0), got)

	// Equal to now down to the second counts as past.
	got = NextFireTime(10, 0, nil, now)
	require.Equal(t, mustDate(4, 10, 0, 0), got)

	// A few seconds past the minute still rolls over.
	got = NextFireTime(10, 0, nil, mustDate(3, 10, 0, 30))
	require.Equal(t, mustDate(4, 10, 0, 0), got)
}

// TestNextFireTime_Repeating verifies the forward scan over repeat weekdays.
func TestNextFireTime_Repeating(t *testing.T) {
	t.Parallel()

	now := mustDate(3, 10, 0, 0) // Monday 10:00

	// Monday alarm later today fires today.
	got := NextFireTime(18, 0, []Weekday{Monday}, now)
	require.Equal(t, mustDate(3, 18, 0, 0), got)

	// Mon+Wed alarm whose time already passed fires Wednesday.
	got = NextFireTime(7, 0, []Weekday{Monday, Wednesday}, now)
	require.Equal(t, mustDate(5, 7, 0, 0), got)
	require.Equal(t, time.Wednesday, got.Weekday())

	// Monday-only alarm whose time passed fires the following Monday.
	got = NextFireTime(7, 0, []Weekday{Monday}, now)
	require.Equal(t, mustDate(10, 7, 0, 0), got)
	require.Equal(t, time.Monday, got.Weekday())
}

// TestNextFireTime_Earliest checks the returned instant is the earliest valid
// candidate strictly after now across a spread of inputs.
func TestNextFireTime_Earliest(t *testing.T) {
	t.Parallel()

	days := []Weekday{Sunday, Tuesday, Saturday}
	set := map[Weekday]struct{}{}

	for _, d := range days {
		set[d] = struct{}{}
	}

	for hour := 0; hour < 24; hour += 5 {
		for offset := 0; offset < 7; offset++ {
			now := mustDate(3+offset, 11, 17, 3)
			got := NextFireTime(hour, 45, days, now)

			require.True(t, got.After(now))
			require.Contains(t, set, Weekday(got.Weekday()))
			require.Equal(t, hour, got.Hour())
			require.Equal(t, 45, got.Minute())
			require.Zero(t, got.Second())

			// No earlier candidate: every matching day strictly between
			// now and the result would produce a time not after now.
			for earlier := got.AddDate(0, 0, -1); earlier.After(now); earlier = earlier.AddDate(0, 0, -1) {
				if _, ok := set[Weekday(earlier.Weekday())]; !ok {
					continue
				}

				require.False(t, earlier.After(now) && earlier.Before(got) && earlier.Hour() == hour,
					"found earlier candidate %v between %v and %v", earlier, now, got)
			}
		}
	}
}

// TestNextFireTime_PreservesComponents verifies exact time-of-day components survive.
func TestNextFireTime_PreservesComponents(t *testing.T) {
	t.Parallel()

	now := mustDate(3, 23, 59, 59)
	got := NextFireTime(0, 1, nil, now)

	require.Equal(t, 0, got.Hour())
	require.Equal(t, 1, got.Minute())
	require.Zero(t, got.Second())
	require.Zero(t, got.Nanosecond())
	require.Equal(t, mustDate(4, 0, 1, 0), got)
}
