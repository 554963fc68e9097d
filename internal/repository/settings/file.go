package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"versewake/internal/config"
	"versewake/internal/domain/passage"
)

// Verse source values derived from the settings flags.
const (
	SourceRandom   = "random"
	SourceSelected = "selected"
	SourceFamous   = "famous"
)

// Settings is the singleton passage-selection record.
type Settings struct {
	// UseFamousVerses switches passage selection to the curated local set.
	UseFamousVerses bool `json:"use_famous_verses"`
	// SelectedBooks holds the USFM codes random selection draws from.
	// An empty set is degenerate; the passage provider falls back to the
	// full catalog.
	SelectedBooks []string `json:"selected_books"`
	// VerseSource is derived from the two fields above on every write.
	VerseSource string `json:"verse_source"`
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}

	cloned := *s
	cloned.SelectedBooks = slices.Clone(s.SelectedBooks)

	return &cloned
}

// deriveSource recomputes the VerseSource field from the flags.
func (s *Settings) deriveSource() {
	switch {
	case s.UseFamousVerses:
		s.VerseSource = SourceFamous
	case len(s.SelectedBooks) > 0:
		s.VerseSource = SourceSelected
	default:
		s.VerseSource = SourceRandom
	}
}

// Repository defines persistence operations for the settings record.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Put(ctx context.Context, s *Settings) error
}

// errSettingsNotSet is returned when a nil settings record is provided.
var errSettingsNotSet = errors.New("settings are not set")

// FileRepository persists the settings record to a JSON file on disk.
type FileRepository struct {
	// path is the filesystem location of the settings file.
	path string
	// mu protects concurrent access to the settings file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Get reads the settings from disk. On first run it initializes the record
// with the full book catalog selected and persists it.
func (r *FileRepository) Get(_ context.Context) (*Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)

	switch {
	case err == nil:
		var s Settings
		if err = json.Unmarshal(contents, &s); err != nil {
			return nil, fmt.Errorf("decode settings file: %w", err)
		}

		s.deriveSource()

		return &s, nil
	case errors.Is(err, os.ErrNotExist):
		initial := &Settings{
			SelectedBooks: passage.AllBookCodes(),
		}
		initial.deriveSource()

		if err = r.store(initial); err != nil {
			return nil, err
		}

		return initial, nil
	default:
		return nil, fmt.Errorf("read settings file: %w", err)
	}
}

// Put writes the settings record to disk, recomputing the derived source.
func (r *FileRepository) Put(_ context.Context, s *Settings) error {
	if s == nil {
		return errSettingsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s.deriveSource()

	return r.store(s)
}

// store encodes and writes the settings file. Callers must hold r.mu.
func (r *FileRepository) store(s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
