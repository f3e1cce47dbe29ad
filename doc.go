// Package panacus computes coverage and growth statistics over pangenome
// graphs: how node, edge or basepair content accumulates as samples are
// added to a pangenome, under configurable presence thresholds.
//
// # Quick Start
//
//	store := gfa.NewStore(gfa.KindNode)
//	groups := gfa.NewGroupIndex()
//	// ... the graph scanner populates items, paths and occurrences ...
//
//	p, _ := panacus.New(store, groups)
//	_ = p.Count(ctx, occurrences)
//
//	h, _ := p.Hist()                                  // coverage histogram
//	specs, _ := growth.ParseSpecs("1,2", "0,0.9")     // threshold pairs
//	curves, _ := p.Growth(ctx, specs)                 // averaged growth
//
// Ordered growth walks one concrete sample order instead of averaging over
// all of them:
//
//	report, _ := p.BindOrder(orderLabels) // or p.OptimizeOrder() to derive one
//	curves, _, _ := p.OrderedGrowth(ctx, specs)
//
// # Design
//
// Counting is the expensive pass: it touches every path traversal once and
// condenses them into per-item coverage bit sets and a histogram. All
// growth math runs off those condensed forms, so any number of threshold
// specs reuse one counting pass, and a histogram serialized with the hist
// package reproduces identical growth after a round trip.
//
// Counting and growth parallelize over independent slices of work (groups,
// sample sizes, threshold specs) and merge through associative commutative
// reductions only, so results never depend on worker count.
package panacus
