package nlp

import (
	"strings"
	"unicode"
)

// Normalizer reduces raw text to a canonical stream over a fixed alphabet.
type Normalizer struct {
	alphabet Alphabet
	accepted map[rune]bool
	folds    map[rune]rune
}

// NewNormalizer builds a Normalizer for the given alphabet. Fold sources are
// accepted as input letters even when they are not part of the alphabet.
func NewNormalizer(alphabet Alphabet, folds ...FoldRule) *Normalizer {
	n := &Normalizer{
		alphabet: alphabet,
		accepted: make(map[rune]bool),
		folds:    make(map[rune]rune),
	}
	for _, r := range alphabet.symbols {
		if r != Separator {
			n.accepted[r] = true
		}
	}
	for _, f := range folds {
		n.accepted[f.From] = true
		n.folds[f.From] = f.To
	}
	return n
}

// NewDefaultNormalizer uses the with-separator alphabet and DefaultFolds.
func NewDefaultNormalizer() *Normalizer {
	return NewNormalizer(WithSeparator(), DefaultFolds()...)
}

func (n *Normalizer) Alphabet() Alphabet { return n.alphabet }

// Normalize never fails: any input reduces to a possibly empty stream with
// single separators between words and none at either end.
func (n *Normalizer) Normalize(raw string) string {
	text := strings.ToLower(raw)

	text = strings.Map(func(r rune) rune {
		if n.accepted[r] || unicode.IsSpace(r) {
			return r
		}
		return Separator
	}, text)
	text = collapseSeparators(text)

	text = strings.Map(func(r rune) rune {
		if to, ok := n.folds[r]; ok {
			return to
		}
		return r
	}, text)

	text = strings.Map(func(r rune) rune {
		if r == Separator || (unicode.IsLetter(r) && n.alphabet.Contains(r)) {
			return r
		}
		return -1
	}, text)

	return collapseSeparators(text)
}

// collapseSeparators turns every whitespace run into one separator and trims both ends.
func collapseSeparators(text string) string {
	return strings.Join(strings.Fields(text), string(Separator))
}

// StripSeparators deletes every separator, keeping the remaining symbols in order.
func StripSeparators(stream string) string {
	return strings.ReplaceAll(stream, string(Separator), "")
}
