// Package gfa holds the structural model of a loaded pangenome graph: the
// universe of countable items with their intrinsic weights, and the table of
// sample groups traversing them.
//
// The package does not read graph files. The (external) scanner hands it
// validated item and path records; everything here is immutable once loading
// finishes.
package gfa

// Store is the item universe for one count kind. Weights are 1 for node and
// edge counting and the segment length for basepair counting.
//
// A Store is append-only during loading and read-only afterwards.
type Store struct {
	kind    Kind
	weights []uint32
	total   uint64
}

// NewStore creates an empty item universe for the given count kind.
func NewStore(kind Kind) *Store {
	return &Store{kind: kind}
}

// AddItem appends an item and returns its dense ID.
func (s *Store) AddItem(weight uint32) ItemID {
	s.weights = append(s.weights, weight)
	s.total += uint64(weight)
	return ItemID(len(s.weights) - 1)
}

// Kind returns the count kind of this universe.
func (s *Store) Kind() Kind { return s.kind }

// Len returns the number of items.
func (s *Store) Len() int { return len(s.weights) }

// Weight returns the intrinsic weight of an item.
func (s *Store) Weight(id ItemID) uint32 { return s.weights[id] }

// TotalWeight returns the summed weight of all items. Coverage histograms
// over this universe must conserve this total across their buckets.
func (s *Store) TotalWeight() uint64 { return s.total }
