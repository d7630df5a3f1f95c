package algorithm

import (
	"fmt"
	"sync"

	"entropylab/pkg/nlp"
)

// Names of the estimators registered by DefaultRegistry.
const (
	H1             = "h1"
	H1NoSpace      = "h1_nospace"
	H2             = "h2"
	H2NoSpace      = "h2_nospace"
	H2Step2        = "h2_step2"
	H2Step2NoSpace = "h2_step2_nospace"
)

// Registry keeps estimators by name in registration order.
type Registry struct {
	mu         sync.RWMutex
	estimators map[string]Estimator
	order      []string
}

func NewRegistry() *Registry {
	return &Registry{estimators: make(map[string]Estimator)}
}

// DefaultRegistry holds the six unigram/bigram estimators over both alphabet variants.
func DefaultRegistry() *Registry {
	withSep, noSep := nlp.WithSeparator(), nlp.WithoutSeparator()

	r := NewRegistry()
	r.Register(&NGramEstimator{Label: H1, Order: 1, Stride: 1, Alphabet: withSep})
	r.Register(&NGramEstimator{Label: H1NoSpace, Order: 1, Stride: 1, Alphabet: noSep})
	r.Register(&NGramEstimator{Label: H2, Order: 2, Stride: 1, Alphabet: withSep})
	r.Register(&NGramEstimator{Label: H2NoSpace, Order: 2, Stride: 1, Alphabet: noSep})
	r.Register(&NGramEstimator{Label: H2Step2, Order: 2, Stride: 2, Alphabet: withSep})
	r.Register(&NGramEstimator{Label: H2Step2NoSpace, Order: 2, Stride: 2, Alphabet: noSep})
	return r
}

// Register adds or replaces an estimator. A replaced estimator keeps its position.
func (r *Registry) Register(e Estimator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.estimators[e.Name()]; !exists {
		r.order = append(r.order, e.Name())
	}
	r.estimators[e.Name()] = e
}

func (r *Registry) Get(name string) (Estimator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.estimators[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("estimator '%s' not found", name)
}

// All returns the estimators in registration order.
func (r *Registry) All() []Estimator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Estimator, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.estimators[name])
	}
	return all
}
