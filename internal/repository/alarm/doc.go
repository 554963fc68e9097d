// Package alarm implements persistence for alarm records.
//
// The FileRepository stores alarms as a JSON document on disk and exposes a
// Repository interface that the lifecycle service depends on. Writes are
// whole-record replace; partial merges never happen.
package alarm
