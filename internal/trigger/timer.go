package trigger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"versewake/internal/logger"
)

// TimerScheduler is the in-process Scheduler backed by time.Timer. A second
// registration under the same id replaces the pending timer, so re-arming an
// alarm never leaves a stale one-shot behind.
type TimerScheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	handler Handler
}

// NewTimerScheduler creates a scheduler with no pending triggers.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[string]*time.Timer),
	}
}

// Notify installs the handler invoked for every fired trigger. It must be
// called before the first registration.
func (s *TimerScheduler) Notify(handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = handler
}

// RegisterOneShot schedules a trigger at the given instant, replacing any
// pending trigger with the same id. Instants in the past fire immediately.
// The payload crosses the boundary serialized, so both sides hold to the
// same validated wire contract.
func (s *TimerScheduler) RegisterOneShot(_ context.Context, id string, at time.Time, payload Payload) error {
	data, err := EncodePayload(payload)
	if err != nil {
		return fmt.Errorf("register trigger %q: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if pending, ok := s.timers[id]; ok {
		pending.Stop()
	}

	s.timers[id] = time.AfterFunc(time.Until(at), func() {
		s.fire(id, at, data)
	})

	logger.DebugKV(context.Background(), "Trigger registered",
		"trigger_id", id,
		"at", at)

	return nil
}

// Cancel removes a pending trigger. Cancelling an absent id is a no-op.
func (s *TimerScheduler) Cancel(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending, ok := s.timers[id]; ok {
		pending.Stop()
		delete(s.timers, id)
	}

	return nil
}

// CancelAll removes every pending trigger.
func (s *TimerScheduler) CancelAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, pending := range s.timers {
		pending.Stop()
		delete(s.timers, id)
	}

	return nil
}

// fire decodes the stored payload and delivers one trigger to the installed
// handler.
func (s *TimerScheduler) fire(id string, at time.Time, data []byte) {
	s.mu.Lock()

	delete(s.timers, id)
	handler := s.handler

	s.mu.Unlock()

	ctx := context.Background()

	payload, err := DecodePayload(data)
	if err != nil {
		logger.ErrorKV(ctx, "Dropping trigger with unusable payload", "trigger_id", id, "error", err)
		return
	}

	if handler == nil {
		logger.WarnKV(ctx, "Trigger fired without a handler", "trigger_id", id)
		return
	}

	handler(ctx, Fired{
		ID:      id,
		Payload: payload,
		At:      at,
	})
}
