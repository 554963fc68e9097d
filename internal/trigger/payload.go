package trigger

import (
	"encoding/json"
	"errors"
	"fmt"

	domain "versewake/internal/domain/alarm"
)

// Payload is the serialized alarm snapshot carried by a trigger. The same
// schema is validated when a trigger is registered and when it fires.
type Payload struct {
	AlarmID       string           `json:"alarm_id"`
	Hour          int              `json:"hour"`
	Minute        int              `json:"minute"`
	Label         string           `json:"label,omitempty"`
	RepeatDays    []domain.Weekday `json:"repeat_days,omitempty"`
	Sound         string           `json:"sound,omitempty"`
	Vibrate       bool             `json:"vibrate"`
	SnoozeEnabled bool             `json:"snooze_enabled"`
	SnoozeMinutes int              `json:"snooze_minutes"`
}

// errAlarmIDRequired is returned for payloads without an alarm id.
var errAlarmIDRequired = errors.New("payload alarm id must be provided")

// PayloadFromAlarm snapshots an alarm record into a trigger payload.
func PayloadFromAlarm(a *domain.Alarm) Payload {
	return Payload{
		AlarmID:       a.ID,
		Hour:          a.Hour,
		Minute:        a.Minute,
		Label:         a.Label,
		RepeatDays:    a.Clone().RepeatDays,
		Sound:         a.Sound,
		Vibrate:       a.Vibrate,
		SnoozeEnabled: a.SnoozeEnabled,
		SnoozeMinutes: a.SnoozeMinutes,
	}
}

// Alarm reconstructs the alarm record from the payload snapshot.
// Reconstructed alarms are considered enabled: a trigger only exists for an
// armed alarm.
func (p Payload) Alarm() *domain.Alarm {
	return &domain.Alarm{
		ID:            p.AlarmID,
		Hour:          p.Hour,
		Minute:        p.Minute,
		Enabled:       true,
		Label:         p.Label,
		RepeatDays:    p.RepeatDays,
		Sound:         p.Sound,
		Vibrate:       p.Vibrate,
		SnoozeEnabled: p.SnoozeEnabled,
		SnoozeMinutes: p.SnoozeMinutes,
	}
}

// Validate checks the payload against the schema both sides agree on.
func (p Payload) Validate() error {
	if p.AlarmID == "" {
		return errAlarmIDRequired
	}

	return p.Alarm().Validate()
}

// EncodePayload validates and serializes the payload.
func EncodePayload(p Payload) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate payload: %w", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return data, nil
}

// DecodePayload deserializes and validates a payload received from a fired
// trigger.
func DecodePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decode payload: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Payload{}, fmt.Errorf("validate payload: %w", err)
	}

	return p, nil
}
