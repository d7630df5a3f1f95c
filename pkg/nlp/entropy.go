package nlp

import (
	"math"
)

// ShannonEntropy computes -Σ p·log2(p) over the table, in bits per n-gram.
// An empty table has entropy 0.
func ShannonEntropy(t FrequencyTable) float64 {
	if t.Total == 0 {
		return 0
	}

	entropy := 0.0
	for _, gram := range t.keys {
		count := t.counts[gram]
		if count == 0 {
			continue
		}
		prob := float64(count) / float64(t.Total)
		entropy -= prob * math.Log2(prob)
	}

	// Rounding can leave -0 or a tiny negative value for single-gram tables.
	if entropy < 0 {
		return 0
	}
	return entropy
}

// EntropyRate is ShannonEntropy divided by the n-gram order, in bits per symbol.
func EntropyRate(t FrequencyTable) float64 {
	if t.Order == 0 {
		return 0
	}
	return ShannonEntropy(t) / float64(t.Order)
}
