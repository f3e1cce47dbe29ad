package gfa

import "sort"

// Summary are the headline statistics of a loaded graph, as reported by the
// info analysis.
type Summary struct {
	Kind        Kind
	Items       int
	TotalWeight uint64
	Groups      int
	Paths       int
	MeanWeight  float64
	// MedianWeight and N50 describe the item-weight distribution; for
	// basepair counting these are the usual segment-length statistics.
	MedianWeight float64
	N50          uint32
}

// Summarize computes the summary of an item universe and its group table.
func Summarize(s *Store, x *GroupIndex) Summary {
	sum := Summary{
		Kind:        s.Kind(),
		Items:       s.Len(),
		TotalWeight: s.TotalWeight(),
	}
	if x != nil {
		sum.Groups = x.Groups()
		sum.Paths = x.Paths()
	}
	if s.Len() == 0 {
		return sum
	}
	sorted := make([]uint32, s.Len())
	copy(sorted, s.weights)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	sum.MeanWeight = float64(s.TotalWeight()) / float64(s.Len())
	sum.MedianWeight = medianSorted(sorted)
	sum.N50 = n50Sorted(sorted, s.TotalWeight())
	return sum
}

func medianSorted(v []uint32) float64 {
	mid := len(v) / 2
	if len(v)%2 == 1 {
		return float64(v[mid])
	}
	return (float64(v[mid-1]) + float64(v[mid])) / 2
}

// n50Sorted returns the smallest weight w such that items of weight >= w
// hold at least half of the total.
func n50Sorted(v []uint32, total uint64) uint32 {
	var running uint64
	for i := len(v) - 1; i >= 0; i-- {
		running += uint64(v[i])
		if running*2 >= total {
			return v[i]
		}
	}
	return 0
}
