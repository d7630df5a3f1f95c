package algorithm

import (
	"context"
	"sync"
)

// ExecuteEstimators runs every registered estimator over stream. Results come
// back in registration order whether or not the branches ran in parallel.
// Each branch works on its own derived stream and table; nothing is shared.
func ExecuteEstimators(ctx context.Context, r *Registry, stream string, parallel bool) ([]Result, error) {
	estimators := r.All()
	results := make([]Result, len(estimators))

	if !parallel {
		for i, e := range estimators {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = e.Estimate(stream)
		}
		return results, nil
	}

	var wg sync.WaitGroup
	for i, e := range estimators {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, e Estimator) {
			defer wg.Done()
			results[i] = e.Estimate(stream)
		}(i, e)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ByName indexes results by estimator name.
func ByName(results []Result) map[string]Result {
	m := make(map[string]Result, len(results))
	for _, res := range results {
		m[res.Name] = res
	}
	return m
}
