package algorithm

import (
	"entropylab/pkg/nlp"
)

// Estimator turns a canonical with-separator stream into one entropy estimate.
type Estimator interface {
	Name() string
	Estimate(stream string) Result
}

// Result is one estimate together with the frequency table it came from.
type Result struct {
	Name       string
	Order      int
	Stride     int
	Separator  bool
	Entropy    float64
	MaxEntropy float64
	Redundancy float64
	Table      nlp.FrequencyTable
}

// NGramEstimator counts n-grams over Alphabet and reports the per-symbol
// entropy rate. When Alphabet has no separator the stream is stripped first.
type NGramEstimator struct {
	Label    string
	Order    int
	Stride   int
	Alphabet nlp.Alphabet
}

func (e *NGramEstimator) Name() string { return e.Label }

func (e *NGramEstimator) Estimate(stream string) Result {
	withSep := e.Alphabet.HasSeparator()
	if !withSep {
		stream = nlp.StripSeparators(stream)
	}

	table := nlp.CountNGrams(stream, e.Order, e.Stride)
	h := nlp.EntropyRate(table)
	h0 := e.Alphabet.MaxEntropy()

	return Result{
		Name:       e.Label,
		Order:      table.Order,
		Stride:     table.Stride,
		Separator:  withSep,
		Entropy:    h,
		MaxEntropy: h0,
		Redundancy: nlp.Redundancy(h, h0),
		Table:      table,
	}
}
