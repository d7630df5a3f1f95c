package nlp

import "math"

// Separator is the canonical word separator.
const Separator = ' '

// RussianLetters is the а..я range. ё and ъ are folded away by DefaultFolds,
// but ъ stays in the alphabet so both variants keep their nominal sizes.
const RussianLetters = "абвгдежзийклмнопрстуфхцчшщъыьэюя"

// Alphabet is an ordered, immutable set of canonical symbols.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

func NewAlphabet(symbols string) Alphabet {
	a := Alphabet{index: make(map[rune]int)}
	for _, r := range symbols {
		if _, dup := a.index[r]; dup {
			continue
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	return a
}

// WithSeparator returns the 33-symbol alphabet: 32 letters plus the separator.
func WithSeparator() Alphabet { return NewAlphabet(RussianLetters + string(Separator)) }

// WithoutSeparator returns the 32-letter alphabet.
func WithoutSeparator() Alphabet { return NewAlphabet(RussianLetters) }

func (a Alphabet) Size() int { return len(a.symbols) }

func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Index returns the position of r in the alphabet, or -1.
func (a Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// Symbols returns a copy of the alphabet in order.
func (a Alphabet) Symbols() []rune {
	return append([]rune(nil), a.symbols...)
}

func (a Alphabet) HasSeparator() bool { return a.Contains(Separator) }

// MaxEntropy is the order-0 entropy: log2 of the alphabet size.
func (a Alphabet) MaxEntropy() float64 {
	if len(a.symbols) == 0 {
		return 0
	}
	return math.Log2(float64(len(a.symbols)))
}

// FoldRule identifies one letter with another.
type FoldRule struct {
	From rune
	To   rune
}

// DefaultFolds collapses ё onto е and the hard sign onto the soft sign.
func DefaultFolds() []FoldRule {
	return []FoldRule{{From: 'ё', To: 'е'}, {From: 'ъ', To: 'ь'}}
}
