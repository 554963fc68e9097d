package lifecycle

import (
	"time"

	domain "versewake/internal/domain/alarm"
	passagedomain "versewake/internal/domain/passage"
	"versewake/internal/service/typing"
)

// EpisodeState is the ringing sub-state.
type EpisodeState string

const (
	// EpisodeLoading means the alarm rings but the passage has not arrived.
	EpisodeLoading EpisodeState = "loading"
	// EpisodeActive means the typing challenge is under way.
	EpisodeActive EpisodeState = "active"
)

// episode is the in-memory state of one ringing alarm. It exists only
// between a trigger fire and the dismiss or snooze that resolves it.
type episode struct {
	// alarm is the snapshot reconstructed from the trigger payload.
	alarm *domain.Alarm
	// triggerID is the key the fired one-shot was registered under.
	triggerID string
	// startedAt is when ringing began.
	startedAt time.Time
	// state moves from loading to active once the passage resolves.
	state EpisodeState
	// session drives the typing challenge. Nil while loading.
	session *typing.Session
}

// EpisodeView is the read-only snapshot served to the API.
type EpisodeView struct {
	AlarmID       string
	Label         string
	State         EpisodeState
	StartedAt     time.Time
	SnoozeEnabled bool
	SnoozeMinutes int

	// Challenge fields, zero while State is EpisodeLoading.
	Passage     passagedomain.Passage
	TypedPrefix string
	Progress    float64
	Accuracy    float64
	Mistakes    int
}

// view builds the API snapshot of the episode.
func (e *episode) view() EpisodeView {
	v := EpisodeView{
		AlarmID:       e.alarm.ID,
		Label:         e.alarm.Label,
		State:         e.state,
		StartedAt:     e.startedAt,
		SnoozeEnabled: e.alarm.SnoozeEnabled,
		SnoozeMinutes: e.alarm.SnoozeMinutes,
	}

	if e.session != nil {
		v.Passage = e.session.Target()
		v.TypedPrefix = e.session.TypedPrefix()
		v.Progress = e.session.Progress()
		v.Accuracy = e.session.Accuracy()
		v.Mistakes = e.session.Mistakes()
	}

	return v
}
