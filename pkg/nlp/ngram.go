package nlp

import "fmt"

// FrequencyTable holds n-gram counts for one (order, stride) pass over a stream.
// It is not modified after CountNGrams returns it.
type FrequencyTable struct {
	Order  int
	Stride int
	// Total is the number of n-grams examined and the entropy denominator.
	Total int

	counts map[string]int
	keys   []string
}

// Count returns the occurrences of gram, or 0.
func (t FrequencyTable) Count(gram string) int { return t.counts[gram] }

// Keys returns the distinct n-grams in order of first occurrence.
func (t FrequencyTable) Keys() []string { return append([]string(nil), t.keys...) }

func (t FrequencyTable) Len() int { return len(t.keys) }

// Sum adds up all counts. For tables built by CountNGrams it equals Total.
func (t FrequencyTable) Sum() int {
	sum := 0
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// CountNGrams counts unigrams (order 1) or bigrams (order 2) in stream.
// Stride 1 slides the window one symbol at a time; stride 2 partitions the
// stream into disjoint pairs starting at position 0, dropping a trailing odd
// symbol. A stream shorter than order yields an empty table with Total 0.
func CountNGrams(stream string, order, stride int) FrequencyTable {
	if order < 1 || order > 2 {
		panic(fmt.Sprintf("nlp: unsupported n-gram order %d", order))
	}
	if stride < 1 || stride > 2 {
		panic(fmt.Sprintf("nlp: unsupported stride %d", stride))
	}
	if order == 1 {
		stride = 1
	}

	t := FrequencyTable{Order: order, Stride: stride, counts: make(map[string]int)}
	symbols := []rune(stream)

	for i := 0; i+order <= len(symbols); i += stride {
		gram := string(symbols[i : i+order])
		if _, seen := t.counts[gram]; !seen {
			t.keys = append(t.keys, gram)
		}
		t.counts[gram]++
		t.Total++
	}
	return t
}
