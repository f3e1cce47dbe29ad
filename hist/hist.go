// Package hist holds coverage histograms and their tab-separated
// interchange format.
//
// A histogram maps a coverage count c (number of distinct groups covering
// an item) to the summed weight of items with exactly that count. It is the
// only input the averaged growth estimator needs, which decouples the
// expensive counting pass from the cheap growth math: one histogram serves
// any number of threshold specs, and a histogram written to disk and read
// back yields identical growth results.
package hist

import "fmt"

// Hist is a coverage histogram over a contiguous domain 0..Groups().
// Bucket 0 carries the weight of items no group covers; emission elides it
// by default but the struct always keeps it so the buckets conserve the
// total weight of the item universe.
type Hist struct {
	// Kind is the lowercase count-kind name ("node", "edge", "bp").
	Kind string
	// Buckets[c] is the summed weight of items with coverage count c.
	// len(Buckets) == number of groups + 1.
	Buckets []uint64
}

// New creates a zeroed histogram for the given number of groups.
func New(kind string, groups int) *Hist {
	return &Hist{Kind: kind, Buckets: make([]uint64, groups+1)}
}

// Groups returns the number of groups the histogram was computed over.
func (h *Hist) Groups() int { return len(h.Buckets) - 1 }

// Add accumulates weight into the bucket for coverage count c.
func (h *Hist) Add(c int, weight uint64) { h.Buckets[c] += weight }

// Total returns the summed weight over all buckets, including bucket 0.
func (h *Hist) Total() uint64 {
	var total uint64
	for _, w := range h.Buckets {
		total += w
	}
	return total
}

// Verify checks conservation of mass against the item universe total.
func (h *Hist) Verify(universeTotal uint64) error {
	if got := h.Total(); got != universeTotal {
		return fmt.Errorf("histogram buckets sum to %d, item universe weighs %d", got, universeTotal)
	}
	return nil
}
