package http

import (
	"time"

	domain "versewake/internal/domain/alarm"
	"versewake/internal/repository/settings"
	"versewake/internal/service/lifecycle"
	"versewake/internal/service/typing"
)

// alarmRequest is the inbound body for create and update.
type alarmRequest struct {
	Hour          int              `json:"hour"`
	Minute        int              `json:"minute"`
	Enabled       bool             `json:"enabled"`
	Label         string           `json:"label"`
	RepeatDays    []domain.Weekday `json:"repeat_days"`
	Sound         string           `json:"sound"`
	Vibrate       bool             `json:"vibrate"`
	SnoozeEnabled bool             `json:"snooze_enabled"`
	SnoozeMinutes int              `json:"snooze_minutes"`
}

func (req alarmRequest) toDomain(id string) *domain.Alarm {
	return &domain.Alarm{
		ID:            id,
		Hour:          req.Hour,
		Minute:        req.Minute,
		Enabled:       req.Enabled,
		Label:         req.Label,
		RepeatDays:    req.RepeatDays,
		Sound:         req.Sound,
		Vibrate:       req.Vibrate,
		SnoozeEnabled: req.SnoozeEnabled,
		SnoozeMinutes: req.SnoozeMinutes,
	}
}

// alarmResponse is the outbound alarm shape.
type alarmResponse struct {
	ID            string           `json:"id"`
	Hour          int              `json:"hour"`
	Minute        int              `json:"minute"`
	Enabled       bool             `json:"enabled"`
	Label         string           `json:"label,omitempty"`
	RepeatDays    []domain.Weekday `json:"repeat_days,omitempty"`
	Sound         string           `json:"sound,omitempty"`
	Vibrate       bool             `json:"vibrate"`
	SnoozeEnabled bool             `json:"snooze_enabled"`
	SnoozeMinutes int              `json:"snooze_minutes"`
}

func toAlarmResponse(a *domain.Alarm) alarmResponse {
	return alarmResponse{
		ID:            a.ID,
		Hour:          a.Hour,
		Minute:        a.Minute,
		Enabled:       a.Enabled,
		Label:         a.Label,
		RepeatDays:    a.RepeatDays,
		Sound:         a.Sound,
		Vibrate:       a.Vibrate,
		SnoozeEnabled: a.SnoozeEnabled,
		SnoozeMinutes: a.SnoozeMinutes,
	}
}

func toAlarmResponses(alarms []*domain.Alarm) []alarmResponse {
	out := make([]alarmResponse, 0, len(alarms))
	for _, a := range alarms {
		out = append(out, toAlarmResponse(a))
	}

	return out
}

// settingsRequest is the inbound body for the settings update.
type settingsRequest struct {
	UseFamousVerses bool     `json:"use_famous_verses"`
	SelectedBooks   []string `json:"selected_books"`
}

// settingsResponse mirrors the stored record including the derived source.
type settingsResponse struct {
	UseFamousVerses bool     `json:"use_famous_verses"`
	SelectedBooks   []string `json:"selected_books"`
	VerseSource     string   `json:"verse_source"`
}

func toSettingsResponse(s *settings.Settings) settingsResponse {
	return settingsResponse{
		UseFamousVerses: s.UseFamousVerses,
		SelectedBooks:   s.SelectedBooks,
		VerseSource:     s.VerseSource,
	}
}

// passageResponse is the challenge text shape inside an episode.
type passageResponse struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Source         string `json:"source"`
	ShortReference string `json:"short_reference"`
	Length         int    `json:"length"`
}

// episodeResponse is the ringing state shape.
type episodeResponse struct {
	AlarmID       string           `json:"alarm_id"`
	Label         string           `json:"label,omitempty"`
	State         string           `json:"state"`
	StartedAt     time.Time        `json:"started_at"`
	SnoozeEnabled bool             `json:"snooze_enabled"`
	SnoozeMinutes int              `json:"snooze_minutes"`
	Passage       *passageResponse `json:"passage,omitempty"`
	TypedPrefix   string           `json:"typed_prefix"`
	Progress      float64          `json:"progress"`
	Accuracy      float64          `json:"accuracy"`
	Mistakes      int              `json:"mistakes"`
}

func toEpisodeResponse(view lifecycle.EpisodeView) episodeResponse {
	resp := episodeResponse{
		AlarmID:       view.AlarmID,
		Label:         view.Label,
		State:         string(view.State),
		StartedAt:     view.StartedAt,
		SnoozeEnabled: view.SnoozeEnabled,
		SnoozeMinutes: view.SnoozeMinutes,
		TypedPrefix:   view.TypedPrefix,
		Progress:      view.Progress,
		Accuracy:      view.Accuracy,
		Mistakes:      view.Mistakes,
	}

	if view.State == lifecycle.EpisodeActive {
		resp.Passage = &passageResponse{
			ID:             view.Passage.ID,
			Text:           view.Passage.Text,
			Source:         view.Passage.Source,
			ShortReference: view.Passage.ShortReference,
			Length:         view.Passage.Length,
		}
	}

	return resp
}

// inputRequest carries one typed string from the client.
type inputRequest struct {
	Input string `json:"input"`
}

// inputResponse reports the gate's verdict plus the refreshed episode.
// Episode is omitted once the challenge completed and the alarm dismissed.
type inputResponse struct {
	Accepted  bool             `json:"accepted"`
	Rejected  bool             `json:"rejected"`
	Completed bool             `json:"completed"`
	Episode   *episodeResponse `json:"episode,omitempty"`
}

func toInputResponse(result typing.Result, view lifecycle.EpisodeView) inputResponse {
	resp := inputResponse{
		Accepted:  result.Accepted,
		Rejected:  result.Rejected,
		Completed: result.Completed,
	}

	if !result.Completed {
		episode := toEpisodeResponse(view)
		resp.Episode = &episode
	}

	return resp
}
