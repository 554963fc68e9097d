package typing

import (
	"errors"
	"strings"
	"sync"

	"versewake/internal/domain/passage"
)

// errEmptyTarget is returned when a session is created without target text.
var errEmptyTarget = errors.New("target text must not be empty")

// Result reports the outcome of one input application.
type Result struct {
	// Accepted is set when the input became the new typed prefix.
	Accepted bool
	// Rejected is set when the input was discarded and a mistake counted.
	// Callers use it as the vibration feedback signal.
	Rejected bool
	// Completed is set on the single application that finished the target.
	Completed bool
}

// Session tracks one typing challenge against a fixed target text. The
// typed prefix never diverges from the target: an input that would break
// that invariant is rejected, not applied.
//
// Cleaned KJV text is ASCII, so comparisons are byte-oriented.
type Session struct {
	mu sync.Mutex

	target   passage.Passage
	typed    string
	mistakes int
	done     bool
}

// NewSession starts a challenge against the given passage. The passage text
// must already be cleaned.
func NewSession(target passage.Passage) (*Session, error) {
	if target.Text == "" {
		return nil, errEmptyTarget
	}

	return &Session{target: target}, nil
}

// Target returns the passage being retyped.
func (s *Session) Target() passage.Passage {
	return s.target
}

// Apply processes the full current input string. A deletion (input no longer
// than the typed prefix) is accepted as long as it stays on the target; an
// extension is accepted only when it adds exactly the next target byte.
// Everything else leaves the prefix unchanged and counts a mistake.
func (s *Session) Apply(input string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := s.target.Text
	k := len(s.typed)

	switch {
	case len(input) > len(text):
		return s.reject()
	case len(input) <= k:
		if !strings.HasPrefix(text, input) {
			return s.reject()
		}
	case len(input) == k+1:
		if input[:k] != s.typed || input[k] != text[k] {
			return s.reject()
		}
	default:
		// A jump past the next position, e.g. a paste.
		return s.reject()
	}

	s.typed = input

	result := Result{Accepted: true}

	if s.typed == text && !s.done {
		s.done = true
		result.Completed = true
	}

	return result
}

func (s *Session) reject() Result {
	s.mistakes++

	return Result{Rejected: true}
}

// TypedPrefix returns the accepted input so far.
func (s *Session) TypedPrefix() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.typed
}

// Progress reports how much of the target has been typed, in [0, 1].
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return float64(len(s.typed)) / float64(len(s.target.Text))
}

// Accuracy weighs the typed prefix against the mistakes made, in [0, 1].
// A session with no mistakes is fully accurate, including before any input;
// deleting characters lowers the score again since the prefix shrinks.
func (s *Session) Accuracy() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mistakes == 0 {
		return 1
	}

	return float64(len(s.typed)) / float64(len(s.typed)+s.mistakes)
}

// Mistakes returns the number of rejected inputs.
func (s *Session) Mistakes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mistakes
}

// Completed reports whether the target has been fully typed.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}
