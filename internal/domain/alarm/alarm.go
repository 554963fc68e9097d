package alarm

import (
	"errors"
	"fmt"
	"slices"
)

// Weekday numbers days with a fixed 0=Sunday..6=Saturday order, matching
// time.Weekday so values convert directly.
type Weekday int

// Weekday values.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// weekdayLabels holds the short display names indexed by Weekday.
var weekdayLabels = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the short display label for the weekday.
func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}

	return weekdayLabels[d]
}

// Alarm is a single wake-up alarm record. The persistent store owns the
// canonical copy; in-memory copies are scratch and written back whole.
type Alarm struct {
	// ID is the opaque unique identifier, stable across edits.
	ID string
	// Hour is the wall-clock hour of day (0..23).
	Hour int
	// Minute is the wall-clock minute (0..59).
	Minute int
	// Enabled reports whether the alarm is armed.
	Enabled bool
	// Label is the optional user-facing description.
	Label string
	// RepeatDays is the set of weekdays the alarm repeats on.
	// An empty set means the alarm fires once and self-disables.
	RepeatDays []Weekday
	// Sound identifies the alarm sound to play while ringing.
	Sound string
	// Vibrate enables the vibration pattern while ringing.
	Vibrate bool
	// SnoozeEnabled allows the ringing alarm to be snoozed.
	SnoozeEnabled bool
	// SnoozeMinutes is the snooze duration in minutes, always positive.
	SnoozeMinutes int
}

var (
	// errIDRequired is returned when an alarm has no identifier.
	errIDRequired = errors.New("alarm id must be provided")
	// errTimeOutOfRange is returned for an hour or minute outside the clock face.
	errTimeOutOfRange = errors.New("alarm time out of range")
	// errSnoozeNotPositive is returned when the snooze duration is zero or negative.
	errSnoozeNotPositive = errors.New("snooze duration must be positive")
	// errWeekdayOutOfRange is returned for repeat days outside 0=Sunday..6=Saturday.
	errWeekdayOutOfRange = errors.New("repeat day out of range")
)

// Clone returns a deep copy of the alarm.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.RepeatDays = slices.Clone(a.RepeatDays)

	return &cloned
}

// IsOnce reports whether the alarm is single-shot.
func (a *Alarm) IsOnce() bool {
	return len(a.RepeatDays) == 0
}

// Normalize sorts the repeat set and removes duplicates.
func (a *Alarm) Normalize() {
	if len(a.RepeatDays) == 0 {
		return
	}

	slices.Sort(a.RepeatDays)
	a.RepeatDays = slices.Compact(a.RepeatDays)
}

// Validate checks field ranges. Malformed records are rejected at the edit
// boundary and never reach the lifecycle.
func (a *Alarm) Validate() error {
	if a.ID == "" {
		return errIDRequired
	}

	if a.Hour < 0 || a.Hour > 23 || a.Minute < 0 || a.Minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", errTimeOutOfRange, a.Hour, a.Minute)
	}

	if a.SnoozeMinutes <= 0 {
		return errSnoozeNotPositive
	}

	for _, d := range a.RepeatDays {
		if d < Sunday || d > Saturday {
			return fmt.Errorf("%w: %d", errWeekdayOutOfRange, int(d))
		}
	}

	return nil
}
