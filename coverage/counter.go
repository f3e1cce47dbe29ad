// Package coverage turns raw path-traversal records into per-item group
// coverage sets and aggregates them into a coverage histogram.
//
// Counting parallelizes over groups. Each worker derives the local item set
// one group touches (a set, so revisits within a group are idempotent) and
// merges it into the shared coverage matrix with atomic word-OR. OR and
// addition are associative and commutative, so the result is the same for
// any worker count and any merge order; that determinism is part of the
// contract, not a best-effort property.
package coverage

import (
	"context"
	"fmt"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/codialab/panacus/gfa"
	"github.com/codialab/panacus/hist"
	"github.com/codialab/panacus/internal/bitrow"
)

// Occurrence records that a path's traversal touches an item. The upstream
// scanner has already applied any subset/exclude path selection and
// grouping-file remapping before these records reach the counter.
type Occurrence struct {
	Path gfa.PathID
	Item gfa.ItemID
}

// ErrUnknownItem is the fatal validation error for a traversal referencing
// an item outside the loaded universe.
type ErrUnknownItem struct {
	Item  gfa.ItemID
	Items int
}

func (e *ErrUnknownItem) Error() string {
	return fmt.Sprintf("traversal references item %d outside universe of %d items", e.Item, e.Items)
}

// ErrUnknownPath is the fatal validation error for a traversal referencing
// an unregistered path.
type ErrUnknownPath struct {
	Path  gfa.PathID
	Paths int
}

func (e *ErrUnknownPath) Error() string {
	return fmt.Sprintf("traversal references path %d outside path table of %d entries", e.Path, e.Paths)
}

type options struct {
	parallelism int
}

// Option configures the counter.
type Option func(*options)

// WithParallelism bounds the number of concurrent group workers.
// Values <= 0 mean one worker per CPU.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// Result holds the outcome of a counting pass. All fields are read-only
// after Count returns.
type Result struct {
	// Matrix has one bit row per item; bit g is set when group g covers
	// the item. Coverage count = row popcount.
	Matrix *bitrow.Matrix
	// Profiles[g] is the set of item IDs group g covers. Basepair weight
	// is attributed through these sets exactly once per group, no matter
	// how many of the group's paths revisit an item.
	Profiles []*roaring.Bitmap
}

// Count computes per-item coverage sets over the given traversal records.
// Occurrences are validated up front; any reference to an unknown item or
// path aborts the whole pass.
func Count(ctx context.Context, store *gfa.Store, groups *gfa.GroupIndex, occ []Occurrence, optFns ...Option) (*Result, error) {
	o := options{parallelism: runtime.GOMAXPROCS(0)}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.parallelism <= 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	items := store.Len()
	n := groups.Groups()
	paths := groups.Paths()
	for _, oc := range occ {
		if int(oc.Item) >= items {
			return nil, &ErrUnknownItem{Item: oc.Item, Items: items}
		}
		if int(oc.Path) >= paths {
			return nil, &ErrUnknownPath{Path: oc.Path, Paths: paths}
		}
	}

	// Partition traversal data by group; workers then own disjoint slices.
	perGroup := make([][]gfa.ItemID, n)
	for _, oc := range occ {
		g := groups.PathGroup(oc.Path)
		perGroup[g] = append(perGroup[g], oc.Item)
	}

	res := &Result{
		Matrix:   bitrow.New(items, n),
		Profiles: make([]*roaring.Bitmap, n),
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for g := 0; g < n; g++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			profile := roaring.New()
			for _, it := range perGroup[g] {
				profile.Add(uint32(it))
			}
			it := profile.Iterator()
			for it.HasNext() {
				res.Matrix.Set(int(it.Next()), g)
			}
			res.Profiles[g] = profile
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Histogram aggregates the coverage matrix into a histogram over the item
// universe. Buckets conserve the universe's total weight by construction:
// every item lands in exactly one bucket.
func (r *Result) Histogram(store *gfa.Store) *hist.Hist {
	h := hist.New(store.Kind().String(), r.Matrix.Cols())
	for i := 0; i < r.Matrix.Rows(); i++ {
		h.Add(r.Matrix.RowCount(i), uint64(store.Weight(gfa.ItemID(i))))
	}
	return h
}
