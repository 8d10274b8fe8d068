package sim

import (
	"context"
	"sync"
)

// Ensemble runs independent systems side by side, one goroutine each. The
// members must not share bodies.
type Ensemble struct {
	names   []string
	members []*System
}

func NewEnsemble() *Ensemble {
	return &Ensemble{}
}

func (e *Ensemble) Add(name string, s *System) {
	e.names = append(e.names, name)
	e.members = append(e.members, s)
}

func (e *Ensemble) Names() []string { return e.names }

// Run steps every member the same number of times and returns the results
// keyed by member name. The first error wins.
func (e *Ensemble) Run(ctx context.Context, steps int) (map[string]*Result, error) {
	results := make([]*Result, len(e.members))
	errs := make([]error, len(e.members))

	var wg sync.WaitGroup
	for i := range e.members {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = e.members[idx].Run(ctx, steps)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[string]*Result, len(results))
	for i, r := range results {
		out[e.names[i]] = r
	}
	return out, nil
}
