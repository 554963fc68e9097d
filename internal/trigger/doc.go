// Package trigger defines the one-shot trigger subsystem the alarm lifecycle
// registers fire times with, plus the serialized payload contract carried by
// every trigger.
//
// The payload embeds enough of the alarm record to reconstruct the ringing
// state even when the persisted record is gone, and is validated on both the
// encode and decode side of the boundary. TimerScheduler is the in-process
// implementation backed by time.Timer.
package trigger
