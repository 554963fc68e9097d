package passage

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	domain "versewake/internal/domain/passage"
	"versewake/internal/logger"
	"versewake/internal/repository/settings"
)

const (
	// minPassageLength is the shortest cleaned text accepted as a challenge.
	minPassageLength = 10
	// randomAttempts bounds the resampling loop against the remote API.
	randomAttempts = 3
)

// Fetcher retrieves raw verse text from the remote scripture API.
type Fetcher interface {
	FetchPassage(ctx context.Context, bookCode string, chapter, verseStart, verseCount int) (string, error)
}

// SettingsSource reads the current passage-selection settings.
type SettingsSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

// Provider picks one passage per ringing episode. GetPassage never fails
// outward; every error path degrades to a local passage.
type Provider struct {
	fetcher  Fetcher
	settings SettingsSource

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures provider behaviour.
type Option func(*Provider)

// WithRand replaces the randomness source. Tests use it for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(p *Provider) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// NewProvider creates a passage provider.
func NewProvider(fetcher Fetcher, settingsSource SettingsSource, opts ...Option) *Provider {
	p := &Provider{
		fetcher:  fetcher,
		settings: settingsSource,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// GetPassage returns the challenge text for a new episode.
func (p *Provider) GetPassage(ctx context.Context) domain.Passage {
	cfg, err := p.settings.Get(ctx)
	if err != nil {
		logger.WarnKV(ctx, "Settings unavailable, serving famous verse", "error", err)

		return p.pickFamous()
	}

	if cfg.UseFamousVerses {
		return p.pickFamous()
	}

	if chosen, ok := p.pickRandom(ctx, cfg.SelectedBooks); ok {
		return chosen
	}

	if chosen, ok := p.pickPreset(ctx); ok {
		return chosen
	}

	fallbacks := domain.FallbackPassages()

	return fallbacks[p.intn(len(fallbacks))]
}

func (p *Provider) pickFamous() domain.Passage {
	famous := domain.FamousVerses()

	return famous[p.intn(len(famous))]
}

// pickRandom samples a random verse range, resampling book and position on
// every attempt.
func (p *Provider) pickRandom(ctx context.Context, selectedCodes []string) (domain.Passage, bool) {
	books := resolveBooks(selectedCodes)

	for attempt := 1; attempt <= randomAttempts; attempt++ {
		book := books[p.intn(len(books))]

		chapter := 1 + p.intn(book.Chapters)
		verse := 1 + p.intn(max(1, book.AvgVerses/2))

		count := 1
		if p.intn(2) == 1 {
			count = 2
		}

		ref := domain.VerseRef{BookCode: book.Code, Chapter: chapter, Verse: verse, Count: count}

		chosen, ok := p.fetchRef(ctx, ref)
		if ok {
			return chosen, true
		}

		logger.DebugKV(ctx, "Random verse attempt failed",
			"attempt", attempt,
			"book", book.Code,
			"chapter", chapter,
			"verse", verse)
	}

	return domain.Passage{}, false
}

// pickPreset fetches one uniformly chosen preset reference.
func (p *Provider) pickPreset(ctx context.Context) (domain.Passage, bool) {
	presets := domain.PresetRefs()
	ref := presets[p.intn(len(presets))]

	chosen, ok := p.fetchRef(ctx, ref)
	if !ok {
		logger.Warn(ctx, "Preset passage fetch failed, serving hardcoded fallback")
	}

	return chosen, ok
}

// fetchRef fetches and cleans one verse range, accepting it only when the
// cleaned text is long enough to make a challenge.
func (p *Provider) fetchRef(ctx context.Context, ref domain.VerseRef) (domain.Passage, bool) {
	raw, err := p.fetcher.FetchPassage(ctx, ref.BookCode, ref.Chapter, ref.Verse, ref.Count)
	if err != nil {
		return domain.Passage{}, false
	}

	text := domain.Clean(raw)
	if len(text) < minPassageLength {
		return domain.Passage{}, false
	}

	return domain.New(refID(ref), text, refShortReference(ref)), true
}

// intn returns a uniform value in [0, n) under the provider lock.
func (p *Provider) intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rng.Intn(n)
}

// resolveBooks maps selected USFM codes to catalog books, dropping unknown
// codes. An empty result falls back to the full catalog.
func resolveBooks(codes []string) []domain.Book {
	books := make([]domain.Book, 0, len(codes))

	for _, code := range codes {
		if book, ok := domain.BookByCode(code); ok {
			books = append(books, book)
		}
	}

	if len(books) == 0 {
		return domain.Books()
	}

	return books
}

func refID(ref domain.VerseRef) string {
	id := fmt.Sprintf("%s_%d_%d", ref.BookCode, ref.Chapter, ref.Verse)
	if ref.Count > 1 {
		id = fmt.Sprintf("%s_%d", id, ref.Verse+ref.Count-1)
	}

	return id
}

func refShortReference(ref domain.VerseRef) string {
	name := ref.BookCode
	if book, ok := domain.BookByCode(ref.BookCode); ok {
		name = book.Name
	}

	reference := fmt.Sprintf("%s %d:%d", name, ref.Chapter, ref.Verse)
	if ref.Count > 1 {
		reference = fmt.Sprintf("%s-%d", reference, ref.Verse+ref.Count-1)
	}

	return reference
}
