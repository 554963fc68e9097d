package audio

import (
	"context"
	"sync"
	"time"

	"versewake/internal/logger"
)

// LoggingPlayer is a Player that records playback transitions in the log.
// It backs deployments without a platform audio bridge.
type LoggingPlayer struct {
	mu        sync.Mutex
	playing   string
	vibrating bool
}

// NewLoggingPlayer creates a silent player.
func NewLoggingPlayer() *LoggingPlayer {
	return &LoggingPlayer{}
}

// StartContinuousSound implements Player.
func (p *LoggingPlayer) StartContinuousSound(ctx context.Context, sound string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = sound

	logger.InfoKV(ctx, "Alarm sound started", "sound", sound)

	return nil
}

// StopSound implements Player.
func (p *LoggingPlayer) StopSound(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing == "" {
		return nil
	}

	logger.InfoKV(ctx, "Alarm sound stopped", "sound", p.playing)

	p.playing = ""

	return nil
}

// Vibrate implements Player.
func (p *LoggingPlayer) Vibrate(ctx context.Context, pattern []time.Duration, repeat bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.vibrating = true

	logger.DebugKV(ctx, "Vibration started",
		"pattern_steps", len(pattern),
		"repeat", repeat)

	return nil
}

// CancelVibration implements Player.
func (p *LoggingPlayer) CancelVibration(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.vibrating {
		return nil
	}

	p.vibrating = false

	logger.DebugKV(ctx, "Vibration cancelled")

	return nil
}

// LoggingKeepWarm is a KeepWarm that only tracks and logs session state.
type LoggingKeepWarm struct {
	mu     sync.Mutex
	active bool
}

// NewLoggingKeepWarm creates an inactive keep-warm session.
func NewLoggingKeepWarm() *LoggingKeepWarm {
	return &LoggingKeepWarm{}
}

// Start implements KeepWarm.
func (k *LoggingKeepWarm) Start(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.active {
		return nil
	}

	k.active = true

	logger.Info(ctx, "Keep-warm audio session started")

	return nil
}

// Stop implements KeepWarm.
func (k *LoggingKeepWarm) Stop(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.active {
		return nil
	}

	k.active = false

	logger.Info(ctx, "Keep-warm audio session stopped")

	return nil
}

// Active reports whether the session is held open.
func (k *LoggingKeepWarm) Active() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.active
}
