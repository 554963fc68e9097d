package passage

import (
	"regexp"
	"strings"
)

// Compiled once; Clean runs on every fetched verse.
var (
	verseSpanRE   = regexp.MustCompile(`(?is)<span[^>]*class="v"[^>]*>.*?</span>`)
	supRE         = regexp.MustCompile(`(?is)<sup[^>]*>.*?</sup>`)
	tagRE         = regexp.MustCompile(`<[^>]*>`)
	leadNumWordRE = regexp.MustCompile(`^\s*\d+([A-Z])`)
	midNumWordRE  = regexp.MustCompile(`\s+\d+([A-Z])`)
	leadNumRE     = regexp.MustCompile(`^\s*\d+\s+`)
	midNumRE      = regexp.MustCompile(`\s+\d+\s+`)
	refRangeRE    = regexp.MustCompile(`[A-Za-z\s]+\d+:\d+\s*-\s*\d+`)
	specialRE     = regexp.MustCompile(`[¶§†‡]`)
	ellipsisRE    = regexp.MustCompile(`\.{3,}|…`)
	bracketRE     = regexp.MustCompile(`\[[^\]]*\]`)
	braceRE       = regexp.MustCompile(`\{[^}]*\}`)
	footnoteRE    = regexp.MustCompile(`(?i)\b(Heb\.|Gr\.|Or\.|i\.e\.|cf\.|lit\.|fig\.|prob\.|poss\.)\s*`)
	chapVerseRE   = regexp.MustCompile(`^\d+:\d+\s*`)
	spaceRunRE    = regexp.MustCompile(`\s+`)
	leadEdgeRE    = regexp.MustCompile(`^[,;\s\-]+`)
	trailEdgeRE   = regexp.MustCompile(`[,;\s]+$`)
)

// Clean strips markup, verse-number artifacts, footnote content and excess
// whitespace from fetched verse text. It is deterministic and idempotent:
// running it on already-clean text is a no-op.
func Clean(s string) string {
	// Verse-number markup first, so the numbers vanish with their tags.
	s = verseSpanRE.ReplaceAllString(s, " ")
	s = supRE.ReplaceAllString(s, "")
	s = tagRE.ReplaceAllString(s, " ")

	// Verse numbers concatenated to or floating between words.
	s = leadNumWordRE.ReplaceAllString(s, "${1}")
	s = midNumWordRE.ReplaceAllString(s, " ${1}")
	s = leadNumRE.ReplaceAllString(s, "")
	s = midNumRE.ReplaceAllString(s, " ")

	// Stray reference patterns like "Isaiah 40:31 - 31".
	s = refRangeRE.ReplaceAllString(s, "")
	s = chapVerseRE.ReplaceAllString(s, "")

	// Typographic noise and footnotes.
	s = specialRE.ReplaceAllString(s, "")
	s = ellipsisRE.ReplaceAllString(s, "")
	s = bracketRE.ReplaceAllString(s, "")
	s = braceRE.ReplaceAllString(s, "")
	s = footnoteRE.ReplaceAllString(s, "")

	// Whitespace and edge punctuation.
	s = spaceRunRE.ReplaceAllString(s, " ")
	s = leadEdgeRE.ReplaceAllString(s, "")
	s = trailEdgeRE.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}
