package growth

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/codialab/panacus/coverage"
	"github.com/codialab/panacus/gfa"
)

// Ordered computes exact growth curves for one fixed group order. No
// probability model is involved: groups join in the given order and an
// item becomes present the first time its cumulative coverage count
// reaches m(k).
//
// The order may be a subset of the loaded groups (an explicit order file
// that omits groups excludes them); curves then span len(order) steps.
// Each spec replays the walk independently, so specs parallelize without
// shared mutable state.
func Ordered(ctx context.Context, res *coverage.Result, store *gfa.Store, order []gfa.GroupID, specs []Spec, optFns ...Option) ([]Curve, error) {
	o := applyOptions(optFns)
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	n := len(order)
	curves := make([]Curve, len(specs))
	for i, s := range specs {
		curves[i] = Curve{Spec: s, Values: make([]float64, n)}
	}
	if n == 0 || store.Len() == 0 {
		return curves, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i := range specs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			walkOrdered(res, store, order, specs[i], curves[i].Values)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}

// walkOrdered fills values[k-1] for k = 1..len(order).
func walkOrdered(res *coverage.Result, store *gfa.Store, order []gfa.GroupID, spec Spec, values []float64) {
	// cum[i] is the item's coverage count over the first k groups; it only
	// ever grows. weightAt[c] is the summed weight of items at count c, so
	// the growth value is a suffix sum over weightAt.
	cum := make([]uint32, store.Len())
	weightAt := make([]uint64, len(order)+1)
	weightAt[0] = store.TotalWeight()

	for k := 1; k <= len(order); k++ {
		it := res.Profiles[order[k-1]].Iterator()
		for it.HasNext() {
			id := gfa.ItemID(it.Next())
			w := uint64(store.Weight(id))
			c := cum[id]
			weightAt[c] -= w
			cum[id] = c + 1
			weightAt[c+1] += w
		}

		m := spec.Min(k)
		if m < 0 {
			m = 0
		}
		var present uint64
		for c := m; c <= k; c++ {
			present += weightAt[c]
		}
		values[k-1] = float64(present)
	}
}
