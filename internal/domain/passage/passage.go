package passage

import "fmt"

// Passage is one text challenge. It is constructed per ringing episode,
// immutable once built and never persisted.
type Passage struct {
	// ID is a source-specific identifier, e.g. "JHN_3_16" or "famous_2".
	ID string
	// Text is the cleaned passage text the user has to retype.
	Text string
	// Source is the human-readable citation with version, e.g. "John 3:16 (KJV)".
	Source string
	// ShortReference is the citation without version, e.g. "John 3:16".
	ShortReference string
	// Length is the character length of Text, surfaced for UI only.
	Length int
}

// New builds a Passage from a reference and already-clean text.
func New(id, text, shortReference string) Passage {
	return Passage{
		ID:             id,
		Text:           text,
		Source:         fmt.Sprintf("%s (KJV)", shortReference),
		ShortReference: shortReference,
		Length:         len(text),
	}
}
