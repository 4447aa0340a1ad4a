// Package moderation censors forbidden words in message text before it
// reaches the append path. Matching is case-insensitive over runes.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the Aho-Corasick automaton over the lowercased
// word list. Building once up front keeps Censor allocation-light on
// the hot path.
func NewModerator(words []string, replacement rune) (*Moderator, error) {
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = lowerRunes([]rune(word))
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: machine, replacement: replacement}, nil
}

// Censor masks every matched span with the replacement rune. The
// lowercase copy is built rune-wise so match offsets line up with the
// original text.
func (m *Moderator) Censor(original string) string {
	origRunes := []rune(original)
	if len(origRunes) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(lowerRunes(origRunes), false)
	if len(spans) == 0 {
		return original
	}

	for _, span := range spans {
		end := span.Pos + len(span.Word)
		if span.Pos < 0 || end > len(origRunes) {
			continue
		}
		for i := span.Pos; i < end; i++ {
			origRunes[i] = m.replacement
		}
	}
	return string(origRunes)
}

func lowerRunes(input []rune) []rune {
	out := make([]rune, len(input))
	for i, r := range input {
		out[i] = unicode.ToLower(r)
	}
	return out
}
