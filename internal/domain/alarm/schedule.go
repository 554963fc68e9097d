package alarm

import "time"

// NextFireTime resolves the next instant strictly after now at which an alarm
// with the given time-of-day and repeat set should fire.
//
// The calendar date of the alarm is irrelevant: only hour and minute matter,
// and seconds are always zero. A candidate equal to now down to the second is
// treated as already past. The function is pure, so it is deterministic for a
// given (hour, minute, repeatDays, now) triple.
func NextFireTime(hour, minute int, repeatDays []Weekday, now time.Time) time.Time {
	at := func(day time.Time) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	}

	// Single-shot: today at the alarm time, or tomorrow if that has passed.
	if len(repeatDays) == 0 {
		candidate := at(now)
		if !candidate.After(now) {
			candidate = at(now.AddDate(0, 0, 1))
		}

		return candidate
	}

	set := make(map[Weekday]struct{}, len(repeatDays))
	for _, d := range repeatDays {
		set[d] = struct{}{}
	}

	// Scan forward from today. The scan includes day 7 so an alarm whose only
	// repeat day is today, with a time already passed, lands on the same
	// weekday next week rather than on the defensive fallback.
	for i := 0; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		if _, ok := set[Weekday(day.Weekday())]; !ok {
			continue
		}

		if candidate := at(day); candidate.After(now) {
			return candidate
		}
	}

	// Unreachable with a non-empty repeat set, kept as a bound on the scan.
	return at(now.AddDate(0, 0, 1))
}
