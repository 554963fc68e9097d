package audio

import (
	"context"
	"time"
)

// DefaultRingPattern is the vibration cadence used while an alarm rings:
// an immediate pulse, then alternating pauses and pulses, repeated by the
// platform until cancelled.
var DefaultRingPattern = []time.Duration{
	0,
	time.Second,
	500 * time.Millisecond,
	time.Second,
	500 * time.Millisecond,
}

// RejectPulsePattern is the single short buzz played when typed input is
// rejected by the verification gate.
var RejectPulsePattern = []time.Duration{
	0,
	150 * time.Millisecond,
}

// Player produces the audible and haptic side of a ringing alarm.
type Player interface {
	// StartContinuousSound loops the named alarm sound until StopSound.
	StartContinuousSound(ctx context.Context, sound string) error
	// StopSound stops the looping alarm sound. Safe when nothing plays.
	StopSound(ctx context.Context) error
	// Vibrate starts the given vibration pattern, repeating if repeat is
	// set, replacing any pattern already running.
	Vibrate(ctx context.Context, pattern []time.Duration, repeat bool) error
	// CancelVibration stops any running vibration pattern.
	CancelVibration(ctx context.Context) error
}

// KeepWarm holds the audio session open so a trigger can start playback
// instantly. Start and Stop are idempotent.
type KeepWarm interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
