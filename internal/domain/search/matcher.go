package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher tests names against a search term using Unicode case folding.
// It is safe for concurrent use.
type Matcher struct {
	term string
}

// NewMatcher returns a matcher for term. The term is trimmed; ok is false when it is empty.
func NewMatcher(term string) (m *Matcher, ok bool) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return nil, false
	}

	return &Matcher{term: Fold(trimmed)}, true
}

// Term returns the trimmed, case-folded term.
func (m *Matcher) Term() string {
	return m.term
}

// Match reports whether any of the candidates contains the term.
func (m *Matcher) Match(candidates ...string) bool {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if strings.Contains(Fold(candidate), m.term) {
			return true
		}
	}

	return false
}

// Fold returns s case-folded. A Caser keeps state, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}
