// Package alarm contains the core domain types for wake-up alarms.
//
// It defines the Alarm record, the Weekday repeat set and the pure
// next-fire-time resolver that turns a wall-clock time-of-day plus repeat
// weekdays into a concrete timestamp.
package alarm
