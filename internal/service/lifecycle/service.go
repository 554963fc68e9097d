package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"versewake/internal/audio"
	domain "versewake/internal/domain/alarm"
	passagedomain "versewake/internal/domain/passage"
	"versewake/internal/logger"
	alarmrepo "versewake/internal/repository/alarm"
	"versewake/internal/service/typing"
	"versewake/internal/trigger"
)

// DefaultSnoozeMinutes is applied when a new alarm carries no snooze duration.
const DefaultSnoozeMinutes = 9

// snoozeTriggerSuffix distinguishes a snooze one-shot from the alarm's own
// trigger so the two never replace each other.
const snoozeTriggerSuffix = ":snooze"

var (
	// ErrInvalidAlarm wraps edit-boundary validation failures.
	ErrInvalidAlarm = errors.New("invalid alarm")
	// ErrNoEpisode is returned for episode operations on an alarm that is
	// not ringing.
	ErrNoEpisode = errors.New("alarm is not ringing")
	// ErrPassageLoading is returned for typing input while the passage has
	// not arrived yet.
	ErrPassageLoading = errors.New("passage is still loading")
	// ErrSnoozeDisabled is returned when snoozing an alarm that does not
	// allow it.
	ErrSnoozeDisabled = errors.New("snooze is disabled for this alarm")
)

// PassageSource supplies the text challenge for a new episode.
type PassageSource interface {
	GetPassage(ctx context.Context) passagedomain.Passage
}

// Service is the alarm lifecycle orchestrator.
type Service struct {
	alarms    alarmrepo.Repository
	scheduler trigger.Scheduler
	passages  PassageSource
	player    audio.Player
	keepWarm  audio.KeepWarm
	clock     Clock
	ids       IDGenerator

	// mu guards the locks and episodes maps only. Lifecycle transitions
	// hold the per-alarm mutex, never mu, across I/O.
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	episodes map[string]*episode
}

// Option configures service construction.
type Option func(*Service)

// WithClock replaces the wall clock. Tests use it to pin time.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator replaces the alarm id source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Service) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// NewService creates the lifecycle service.
func NewService(
	alarms alarmrepo.Repository,
	scheduler trigger.Scheduler,
	passages PassageSource,
	player audio.Player,
	keepWarm audio.KeepWarm,
	opts ...Option,
) *Service {
	s := &Service{
		alarms:    alarms,
		scheduler: scheduler,
		passages:  passages,
		player:    player,
		keepWarm:  keepWarm,
		clock:     systemClock{},
		ids:       uuidGenerator{},
		locks:     make(map[string]*sync.Mutex),
		episodes:  make(map[string]*episode),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// lockFor returns the serialization mutex for one alarm id.
func (s *Service) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}

	return m
}

// List returns every stored alarm.
func (s *Service) List(ctx context.Context) ([]*domain.Alarm, error) {
	return s.alarms.GetAll(ctx)
}

// Get returns one stored alarm.
func (s *Service) Get(ctx context.Context, id string) (*domain.Alarm, error) {
	return s.alarms.Get(ctx, id)
}

// Create validates and persists a new alarm, arming it when enabled.
func (s *Service) Create(ctx context.Context, a *domain.Alarm) (*domain.Alarm, error) {
	a = a.Clone()

	if a.ID == "" {
		a.ID = s.ids.NewID()
	}

	if a.SnoozeMinutes == 0 {
		a.SnoozeMinutes = DefaultSnoozeMinutes
	}

	a.Normalize()

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlarm, err)
	}

	lock := s.lockFor(a.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.alarms.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("persist alarm: %w", err)
	}

	if a.Enabled {
		if err := s.armLocked(ctx, a); err != nil {
			return nil, err
		}
	}

	s.syncKeepWarm(ctx)

	logger.InfoKV(ctx, "Alarm created",
		"alarm_id", a.ID,
		"time", fmt.Sprintf("%02d:%02d", a.Hour, a.Minute),
		"enabled", a.Enabled)

	return a.Clone(), nil
}

// Update validates and replaces an existing alarm, re-arming its trigger.
func (s *Service) Update(ctx context.Context, a *domain.Alarm) (*domain.Alarm, error) {
	a = a.Clone()
	a.Normalize()

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlarm, err)
	}

	lock := s.lockFor(a.ID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.alarms.Get(ctx, a.ID); err != nil {
		return nil, err
	}

	if err := s.alarms.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("persist alarm: %w", err)
	}

	if err := s.disarmLocked(ctx, a.ID); err != nil {
		return nil, err
	}

	if a.Enabled {
		if err := s.armLocked(ctx, a); err != nil {
			return nil, err
		}
	}

	s.syncKeepWarm(ctx)

	return a.Clone(), nil
}

// Toggle flips the enabled flag, arming or disarming the trigger.
func (s *Service) Toggle(ctx context.Context, id string) (*domain.Alarm, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	a, err := s.alarms.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Enabled = !a.Enabled

	if err = s.alarms.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("persist alarm: %w", err)
	}

	if a.Enabled {
		err = s.armLocked(ctx, a)
	} else {
		err = s.disarmLocked(ctx, id)
	}

	if err != nil {
		return nil, err
	}

	s.syncKeepWarm(ctx)

	logger.InfoKV(ctx, "Alarm toggled", "alarm_id", id, "enabled", a.Enabled)

	return a.Clone(), nil
}

// Delete removes the alarm, its triggers and any ringing episode.
func (s *Service) Delete(ctx context.Context, id string) error {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if err := s.disarmLocked(ctx, id); err != nil {
		return err
	}

	if ep := s.takeEpisode(id); ep != nil {
		s.silence(ctx)
	}

	if err := s.alarms.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}

	s.syncKeepWarm(ctx)

	logger.InfoKV(ctx, "Alarm deleted", "alarm_id", id)

	return nil
}

// Restore re-arms every enabled persisted alarm. Called once on startup.
func (s *Service) Restore(ctx context.Context) error {
	alarms, err := s.alarms.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load alarms: %w", err)
	}

	for _, a := range alarms {
		if !a.Enabled {
			continue
		}

		lock := s.lockFor(a.ID)
		lock.Lock()

		err = s.armLocked(ctx, a)

		lock.Unlock()

		if err != nil {
			return err
		}
	}

	s.syncKeepWarm(ctx)

	logger.InfoKV(ctx, "Alarms restored", "total", len(alarms))

	return nil
}

// armLocked registers the alarm's one-shot at its next fire time. Callers
// hold the per-alarm lock.
func (s *Service) armLocked(ctx context.Context, a *domain.Alarm) error {
	at := domain.NextFireTime(a.Hour, a.Minute, a.RepeatDays, s.clock.Now())

	if err := s.scheduler.RegisterOneShot(ctx, a.ID, at, trigger.PayloadFromAlarm(a)); err != nil {
		return fmt.Errorf("register trigger: %w", err)
	}

	logger.DebugKV(ctx, "Alarm armed", "alarm_id", a.ID, "fire_at", at)

	return nil
}

// disarmLocked cancels the alarm's own and snooze triggers.
func (s *Service) disarmLocked(ctx context.Context, id string) error {
	if err := s.scheduler.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel trigger: %w", err)
	}

	if err := s.scheduler.Cancel(ctx, id+snoozeTriggerSuffix); err != nil {
		return fmt.Errorf("cancel snooze trigger: %w", err)
	}

	return nil
}

// HandleTrigger enters the Ringing state for a fired trigger and kicks off
// the asynchronous passage fetch. It is installed as the scheduler handler.
func (s *Service) HandleTrigger(ctx context.Context, fired trigger.Fired) {
	alarmID := fired.Payload.AlarmID

	lock := s.lockFor(alarmID)
	lock.Lock()
	defer lock.Unlock()

	ep := &episode{
		alarm:     fired.Payload.Alarm(),
		triggerID: fired.ID,
		startedAt: s.clock.Now(),
		state:     EpisodeLoading,
	}

	s.putEpisode(alarmID, ep)

	if err := s.player.StartContinuousSound(ctx, ep.alarm.Sound); err != nil {
		logger.ErrorKV(ctx, "Failed to start alarm sound", "alarm_id", alarmID, "error", err)
	}

	if ep.alarm.Vibrate {
		if err := s.player.Vibrate(ctx, audio.DefaultRingPattern, true); err != nil {
			logger.ErrorKV(ctx, "Failed to start vibration", "alarm_id", alarmID, "error", err)
		}
	}

	logger.InfoKV(ctx, "Alarm ringing",
		"alarm_id", alarmID,
		"trigger_id", fired.ID,
		"label", ep.alarm.Label)

	go s.loadPassage(context.WithoutCancel(ctx), alarmID, ep)
}

// loadPassage fetches the challenge text and attaches it to the episode,
// unless the episode was resolved or replaced while the fetch was in flight.
func (s *Service) loadPassage(ctx context.Context, alarmID string, ep *episode) {
	chosen := s.passages.GetPassage(ctx)

	lock := s.lockFor(alarmID)
	lock.Lock()
	defer lock.Unlock()

	if s.currentEpisode(alarmID) != ep || ep.state != EpisodeLoading {
		logger.DebugKV(ctx, "Discarding late passage", "alarm_id", alarmID)

		return
	}

	session, err := typing.NewSession(chosen)
	if err != nil {
		logger.ErrorKV(ctx, "Unusable passage", "alarm_id", alarmID, "error", err)

		return
	}

	ep.session = session
	ep.state = EpisodeActive

	logger.InfoKV(ctx, "Challenge active",
		"alarm_id", alarmID,
		"passage", chosen.ShortReference,
		"length", chosen.Length)
}

// Episode returns the ringing snapshot for one alarm.
func (s *Service) Episode(_ context.Context, alarmID string) (EpisodeView, error) {
	lock := s.lockFor(alarmID)
	lock.Lock()
	defer lock.Unlock()

	ep := s.currentEpisode(alarmID)
	if ep == nil {
		return EpisodeView{}, ErrNoEpisode
	}

	return ep.view(), nil
}

// Input routes one typed string to the episode's challenge. A completed
// challenge dismisses the alarm.
func (s *Service) Input(ctx context.Context, alarmID, input string) (typing.Result, EpisodeView, error) {
	lock := s.lockFor(alarmID)
	lock.Lock()
	defer lock.Unlock()

	ep := s.currentEpisode(alarmID)
	if ep == nil {
		return typing.Result{}, EpisodeView{}, ErrNoEpisode
	}

	if ep.state != EpisodeActive {
		return typing.Result{}, EpisodeView{}, ErrPassageLoading
	}

	result := ep.session.Apply(input)

	if result.Rejected {
		if err := s.player.Vibrate(ctx, audio.RejectPulsePattern, false); err != nil {
			logger.WarnKV(ctx, "Failed to pulse on rejection", "alarm_id", alarmID, "error", err)
		}
	}

	// A dismissal that failed on persistence or trigger I/O leaves the
	// episode ringing with the session latch already consumed; retyping the
	// final character then comes back Accepted without a fresh completion
	// signal. Treat a fully retyped target as a dismissal retry.
	completed := result.Completed
	if !completed && result.Accepted &&
		ep.session.Completed() && ep.session.TypedPrefix() == ep.session.Target().Text {
		completed = true
	}

	if completed {
		if err := s.dismissLocked(ctx, alarmID, ep); err != nil {
			return result, ep.view(), err
		}

		result.Completed = true

		return result, EpisodeView{}, nil
	}

	return result, ep.view(), nil
}

// Snooze resolves the episode with a transient one-shot and leaves the
// persisted record untouched.
func (s *Service) Snooze(ctx context.Context, alarmID string) error {
	lock := s.lockFor(alarmID)
	lock.Lock()
	defer lock.Unlock()

	ep := s.currentEpisode(alarmID)
	if ep == nil {
		return ErrNoEpisode
	}

	if !ep.alarm.SnoozeEnabled {
		return ErrSnoozeDisabled
	}

	minutes := ep.alarm.SnoozeMinutes
	if minutes <= 0 {
		minutes = DefaultSnoozeMinutes
	}

	payload := trigger.PayloadFromAlarm(ep.alarm)
	payload.RepeatDays = nil

	at := s.clock.Now().Add(time.Duration(minutes) * time.Minute)

	if err := s.scheduler.RegisterOneShot(ctx, alarmID+snoozeTriggerSuffix, at, payload); err != nil {
		return fmt.Errorf("register snooze trigger: %w", err)
	}

	s.takeEpisode(alarmID)
	s.silence(ctx)

	logger.InfoKV(ctx, "Alarm snoozed",
		"alarm_id", alarmID,
		"minutes", minutes,
		"fire_at", at)

	return nil
}

// dismissLocked resolves a completed episode. The persisted record decides
// what happens next: a repeating alarm re-arms, a one-shot disables itself.
// Callers hold the per-alarm lock.
func (s *Service) dismissLocked(ctx context.Context, alarmID string, ep *episode) error {
	// Drop both trigger keys first; the repeat path re-registers below.
	if err := s.disarmLocked(ctx, alarmID); err != nil {
		return err
	}

	stored, err := s.alarms.Get(ctx, alarmID)

	switch {
	case errors.Is(err, alarmrepo.ErrNotFound):
		// Deleted while ringing. Nothing to persist or re-arm.
	case err != nil:
		return fmt.Errorf("load alarm: %w", err)
	case stored.IsOnce():
		stored.Enabled = false

		if err = s.alarms.Save(ctx, stored); err != nil {
			return fmt.Errorf("persist alarm: %w", err)
		}
	default:
		if err = s.armLocked(ctx, stored); err != nil {
			return err
		}
	}

	s.takeEpisode(alarmID)
	s.silence(ctx)
	s.syncKeepWarm(ctx)

	logger.InfoKV(ctx, "Alarm dismissed",
		"alarm_id", alarmID,
		"mistakes", ep.session.Mistakes())

	return nil
}

// silence stops the alarm sound and vibration.
func (s *Service) silence(ctx context.Context) {
	if err := s.player.StopSound(ctx); err != nil {
		logger.WarnKV(ctx, "Failed to stop alarm sound", "error", err)
	}

	if err := s.player.CancelVibration(ctx); err != nil {
		logger.WarnKV(ctx, "Failed to cancel vibration", "error", err)
	}
}

// syncKeepWarm recomputes the aggregate keep-warm session from the persisted
// enabled set. Always derived, never counted, so concurrent mutations on
// different alarms cannot leave it stale.
func (s *Service) syncKeepWarm(ctx context.Context) {
	alarms, err := s.alarms.GetAll(ctx)
	if err != nil {
		logger.WarnKV(ctx, "Failed to recompute keep-warm state", "error", err)

		return
	}

	anyEnabled := false

	for _, a := range alarms {
		if a.Enabled {
			anyEnabled = true

			break
		}
	}

	if anyEnabled {
		err = s.keepWarm.Start(ctx)
	} else {
		err = s.keepWarm.Stop(ctx)
	}

	if err != nil {
		logger.WarnKV(ctx, "Failed to switch keep-warm session", "error", err)
	}
}

// putEpisode installs the episode for an alarm id.
func (s *Service) putEpisode(alarmID string, ep *episode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.episodes[alarmID] = ep
}

// currentEpisode returns the live episode for an alarm id, if any.
func (s *Service) currentEpisode(alarmID string) *episode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.episodes[alarmID]
}

// takeEpisode removes and returns the live episode for an alarm id.
func (s *Service) takeEpisode(alarmID string) *episode {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep := s.episodes[alarmID]
	delete(s.episodes, alarmID)

	return ep
}
