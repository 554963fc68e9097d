package alarm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"versewake/internal/config"
	domain "versewake/internal/domain/alarm"
)

// Repository defines persistence operations for alarm records.
type Repository interface {
	GetAll(ctx context.Context) ([]*domain.Alarm, error)
	Get(ctx context.Context, id string) (*domain.Alarm, error)
	Save(ctx context.Context, a *domain.Alarm) error
	Delete(ctx context.Context, id string) error
}

// ErrNotFound is returned when no alarm with the requested id exists.
var ErrNotFound = errors.New("alarm not found")

// record is the on-disk JSON shape of one alarm.
type record struct {
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

// fileDocument is the top-level on-disk JSON shape.
type fileDocument struct {
	Alarms []record `json:"alarms"`
}

// FileRepository persists alarm records to a JSON file on disk.
type FileRepository struct {
	// path is the filesystem location of the alarms file.
	path string
	// mu protects concurrent access to the alarms file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// GetAll returns every stored alarm. A missing file yields an empty slice.
func (r *FileRepository) GetAll(_ context.Context) ([]*domain.Alarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	alarms := make([]*domain.Alarm, 0, len(doc.Alarms))
	for _, rec := range doc.Alarms {
		alarms = append(alarms, fromRecord(rec))
	}

	return alarms, nil
}

// Get returns the alarm with the given id or ErrNotFound.
func (r *FileRepository) Get(_ context.Context, id string) (*domain.Alarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range doc.Alarms {
		if rec.ID == id {
			return fromRecord(rec), nil
		}
	}

	return nil, ErrNotFound
}

// Save inserts or replaces the alarm record as a whole.
func (r *FileRepository) Save(_ context.Context, a *domain.Alarm) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	rec := toRecord(a)
	replaced := false

	for i := range doc.Alarms {
		if doc.Alarms[i].ID == rec.ID {
			doc.Alarms[i] = rec
			replaced = true

			break
		}
	}

	if !replaced {
		doc.Alarms = append(doc.Alarms, rec)
	}

	return r.store(doc)
}

// Delete removes the alarm with the given id. Deleting an absent id is a no-op.
func (r *FileRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	kept := doc.Alarms[:0]

	for _, rec := range doc.Alarms {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}

	doc.Alarms = kept

	return r.store(doc)
}

// load reads and decodes the alarms file. Callers must hold r.mu.
func (r *FileRepository) load() (*fileDocument, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileDocument{}, nil
		}

		return nil, fmt.Errorf("read alarms file: %w", err)
	}

	var doc fileDocument
	if err = json.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode alarms file: %w", err)
	}

	return &doc, nil
}

// store encodes and writes the alarms file. Callers must hold r.mu.
func (r *FileRepository) store(doc *fileDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode alarms: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write alarms file: %w", err)
	}

	return nil
}

// fromRecord converts the on-disk record into the domain model.
func fromRecord(rec record) *domain.Alarm {
	return &domain.Alarm{
		ID:            rec.ID,
		Hour:          rec.Hour,
		Minute:        rec.Minute,
		Enabled:       rec.Enabled,
		Label:         rec.Label,
		RepeatDays:    rec.RepeatDays,
		Sound:         rec.Sound,
		Vibrate:       rec.Vibrate,
		SnoozeEnabled: rec.SnoozeEnabled,
		SnoozeMinutes: rec.SnoozeMinutes,
	}
}

// toRecord converts the domain model into the on-disk record.
func toRecord(a *domain.Alarm) record {
	return record{
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
