package passage

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	domain "versewake/internal/domain/passage"
	"versewake/internal/repository/settings"
)

// fakeFetcher scripts remote fetch outcomes.
type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	// respond is invoked per call; nil means always fail.
	respond func(call int) (string, error)
}

func (f *fakeFetcher) FetchPassage(_ context.Context, _ string, _, _, _ int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++

	if f.respond == nil {
		return "", errors.New("network down")
	}

	return f.respond(f.calls)
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

// fakeSettings serves a fixed settings record or error.
type fakeSettings struct {
	cfg *settings.Settings
	err error
}

func (f *fakeSettings) Get(context.Context) (*settings.Settings, error) {
	return f.cfg, f.err
}

func newProviderForTest(fetcher Fetcher, source SettingsSource) *Provider {
	return NewProvider(fetcher, source, WithRand(rand.New(rand.NewSource(1))))
}

// TestGetPassage_FamousMode serves a curated verse without touching the
// network.
func TestGetPassage_FamousMode(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	p := newProviderForTest(fetcher, &fakeSettings{
		cfg: &settings.Settings{UseFamousVerses: true},
	})

	got := p.GetPassage(context.Background())
	require.NotEmpty(t, got.Text)
	require.GreaterOrEqual(t, len(got.Text), minPassageLength)
	require.Contains(t, got.Source, "(KJV)")
	require.Zero(t, fetcher.callCount())
}

// TestGetPassage_RandomSuccess accepts the first fetched verse that cleans
// to a long enough text.
func TestGetPassage_RandomSuccess(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		respond: func(int) (string, error) {
			return "16For God so loved the world", nil
		},
	}

	p := newProviderForTest(fetcher, &fakeSettings{
		cfg: &settings.Settings{SelectedBooks: []string{"JHN"}},
	})

	got := p.GetPassage(context.Background())
	require.Equal(t, "For God so loved the world", got.Text)
	require.Contains(t, got.ShortReference, "John")
	require.Equal(t, 1, fetcher.callCount())
}

// TestGetPassage_RetriesThenPreset exhausts the random attempts, then
// succeeds on the preset fetch.
func TestGetPassage_RetriesThenPreset(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		respond: func(call int) (string, error) {
			if call <= randomAttempts {
				return "", errors.New("timeout")
			}

			return "The LORD is my shepherd; I shall not want.", nil
		},
	}

	p := newProviderForTest(fetcher, &fakeSettings{
		cfg: &settings.Settings{SelectedBooks: []string{"PSA"}},
	})

	got := p.GetPassage(context.Background())
	require.Equal(t, "The LORD is my shepherd; I shall not want.", got.Text)
	require.Equal(t, randomAttempts+1, fetcher.callCount())
}

// TestGetPassage_TerminalFallback returns hardcoded text when every fetch
// fails.
func TestGetPassage_TerminalFallback(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	p := newProviderForTest(fetcher, &fakeSettings{
		cfg: &settings.Settings{SelectedBooks: []string{"JHN"}},
	})

	got := p.GetPassage(context.Background())
	require.NotEmpty(t, got.Text)
	require.GreaterOrEqual(t, len(got.Text), minPassageLength)
	require.Equal(t, randomAttempts+1, fetcher.callCount())
}

// TestGetPassage_ShortTextRejected treats too-short cleaned text like a
// failed fetch.
func TestGetPassage_ShortTextRejected(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		respond: func(int) (string, error) {
			return "3Amen.", nil
		},
	}

	p := newProviderForTest(fetcher, &fakeSettings{
		cfg: &settings.Settings{SelectedBooks: []string{"REV"}},
	})

	got := p.GetPassage(context.Background())
	require.GreaterOrEqual(t, len(got.Text), minPassageLength)
	require.Equal(t, randomAttempts+1, fetcher.callCount())
}

// TestGetPassage_EmptySelection falls back to the full catalog instead of
// failing on the degenerate empty book set.
func TestGetPassage_EmptySelection(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		respond: func(int) (string, error) {
			return "In the beginning God created the heaven and the earth.", nil
		},
	}

	p := newProviderForTest(fetcher, &fakeSettings{
		cfg: &settings.Settings{SelectedBooks: nil},
	})

	got := p.GetPassage(context.Background())
	require.NotEmpty(t, got.Text)
	require.GreaterOrEqual(t, len(got.Text), minPassageLength)
}

// TestGetPassage_SettingsError degrades to a famous verse when the settings
// store is unreadable.
func TestGetPassage_SettingsError(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	p := newProviderForTest(fetcher, &fakeSettings{err: errors.New("disk gone")})

	got := p.GetPassage(context.Background())
	require.NotEmpty(t, got.Text)
	require.Zero(t, fetcher.callCount())
}

// TestGetPassage_UnknownSelectedCodes drops unknown codes and keeps going
// with the catalog.
func TestGetPassage_UnknownSelectedCodes(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{
		respond: func(int) (string, error) {
			return "And God said, Let there be light: and there was light.", nil
		},
	}

	p := newProviderForTest(fetcher, &fakeSettings{
		cfg: &settings.Settings{SelectedBooks: []string{"NOPE", "???"}},
	})

	got := p.GetPassage(context.Background())
	require.NotEmpty(t, got.Text)
}

// TestRefFormatting covers the id and reference forms for single verses and
// ranges.
func TestRefFormatting(t *testing.T) {
	t.Parallel()

	single := domain.VerseRef{BookCode: "JHN", Chapter: 3, Verse: 16, Count: 1}
	require.Equal(t, "JHN_3_16", refID(single))
	require.Equal(t, "John 3:16", refShortReference(single))

	ranged := domain.VerseRef{BookCode: "PSA", Chapter: 23, Verse: 1, Count: 2}
	require.Equal(t, "PSA_23_1_2", refID(ranged))
	require.Equal(t, "Psalms 23:1-2", refShortReference(ranged))
}
