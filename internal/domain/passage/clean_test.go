package passage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestClean covers the markup and artifact stripping cases seen in scripture
// API responses.
func TestClean(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"verse number span": {
			in:   `<span class="v">16</span>For God so loved the world.`,
			want: "For God so loved the world.",
		},
		"sup footnote marker": {
			in:   `Trust in the LORD<sup>a</sup> with all thine heart.`,
			want: "Trust in the LORD with all thine heart.",
		},
		"plain tags": {
			in:   `<p>Jesus wept.</p>`,
			want: "Jesus wept.",
		},
		"number concatenated to word": {
			in:   "31But they that wait upon the LORD",
			want: "But they that wait upon the LORD",
		},
		"number mid text": {
			in:   "be weary; 31 and they shall walk",
			want: "be weary; and they shall walk",
		},
		"bracketed footnote": {
			in:   "I shall not want. [Or, lack nothing]",
			want: "I shall not want.",
		},
		"abbreviation markers": {
			in:   "the heathen, Heb. the nations, I will be exalted",
			want: "the heathen, the nations, I will be exalted",
		},
		"whitespace collapse": {
			in:   "Be still,\n\n  and   know\tthat I am God",
			want: "Be still, and know that I am God",
		},
		"edge punctuation": {
			in:   " ;, - Rejoice evermore. ,; ",
			want: "Rejoice evermore.",
		},
		"pilcrow and ellipsis": {
			in:   "¶ Pray without ceasing…",
			want: "Pray without ceasing",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Clean(tc.in))
		})
	}
}

// TestCleanIdempotent verifies cleaning already-clean text is a no-op.
func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<span class="v">5</span>Trust in the LORD with all thine heart; <span class="v">6</span>and lean not unto thine own understanding.`,
		"31But they that wait upon the LORD shall renew their strength",
		"The LORD is my shepherd; I shall not want.",
	}

	for _, in := range inputs {
		once := Clean(in)
		require.Equal(t, once, Clean(once))
	}

	for _, p := range FamousVerses() {
		require.Equal(t, p.Text, Clean(p.Text))
	}
}

// TestBooksCatalog sanity-checks the catalog and lookups.
func TestBooksCatalog(t *testing.T) {
	t.Parallel()

	require.Len(t, Books(), 66)
	require.Len(t, AllBookCodes(), 66)

	b, ok := BookByCode("JHN")
	require.True(t, ok)
	require.Equal(t, "John", b.Name)
	require.Equal(t, 21, b.Chapters)

	_, ok = BookByCode("XXX")
	require.False(t, ok)

	for _, b := range Books() {
		require.NotEmpty(t, b.Code)
		require.Positive(t, b.Chapters)
		require.Positive(t, b.AvgVerses)
	}
}

// TestCuratedSets verifies the offline verse sets satisfy the minimum length
// the provider promises.
func TestCuratedSets(t *testing.T) {
	t.Parallel()

	for _, p := range FamousVerses() {
		require.GreaterOrEqual(t, len(p.Text), 10)
		require.Equal(t, len(p.Text), p.Length)
		require.NotEmpty(t, p.Source)
	}

	for _, p := range FallbackPassages() {
		require.GreaterOrEqual(t, len(p.Text), 10)
	}

	for _, ref := range PresetRefs() {
		_, ok := BookByCode(ref.BookCode)
		require.True(t, ok)
		require.Positive(t, ref.Chapter)
		require.Positive(t, ref.Verse)
		require.Positive(t, ref.Count)
	}
}
