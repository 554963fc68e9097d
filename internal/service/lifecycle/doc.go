// Package lifecycle owns the alarm state machine: creating and editing
// alarms, arming triggers, handling fires, and resolving ringing episodes
// through snooze or a completed typing challenge.
//
// All transitions for one alarm id are serialized behind a per-alarm mutex;
// alarms with distinct ids proceed independently. The persistent store holds
// the canonical alarm set, and the aggregate keep-warm session is recomputed
// from it after every mutation.
package lifecycle
