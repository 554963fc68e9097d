package trigger

import (
	"context"
	"time"
)

// Fired is the inbound message delivered when a registered trigger fires.
type Fired struct {
	// ID is the trigger key the one-shot was registered under. Snooze
	// triggers use a key distinct from their parent alarm's.
	ID string
	// Payload is the alarm snapshot registered with the trigger.
	Payload Payload
	// At is the instant the trigger was scheduled for.
	At time.Time
}

// Handler consumes fired triggers. The lifecycle service installs one
// handler; deliveries for the same alarm are serialized there.
type Handler func(ctx context.Context, fired Fired)

// Scheduler registers one-shot wake-ups with the trigger subsystem.
type Scheduler interface {
	// RegisterOneShot schedules a trigger at the given instant, replacing
	// any pending trigger with the same id.
	RegisterOneShot(ctx context.Context, id string, at time.Time, payload Payload) error
	// Cancel removes a pending trigger. Cancelling an absent id is a no-op.
	Cancel(ctx context.Context, id string) error
	// CancelAll removes every pending trigger.
	CancelAll(ctx context.Context) error
}
