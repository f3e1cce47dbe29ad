package panacus

import (
	"context"
	"io"

	"github.com/codialab/panacus/cluster"
	"github.com/codialab/panacus/coverage"
	"github.com/codialab/panacus/gfa"
	"github.com/codialab/panacus/growth"
	"github.com/codialab/panacus/hist"
	"github.com/codialab/panacus/table"
)

// Panacus runs coverage and growth analyses over one loaded graph state.
// The graph store and group index are read-only once handed in; the only
// mutable state is the cached counting result and the active group order.
type Panacus struct {
	store  *gfa.Store
	groups *gfa.GroupIndex
	opts   options

	cov *coverage.Result
	h   *hist.Hist
}

// New creates a facade over a loaded item universe and group table.
func New(store *gfa.Store, groups *gfa.GroupIndex, optFns ...Option) (*Panacus, error) {
	if store == nil || groups == nil {
		return nil, ErrNilGraph
	}
	return &Panacus{
		store:  store,
		groups: groups,
		opts:   applyOptions(optFns),
	}, nil
}

// Count runs the coverage counting pass over the traversal records. It must
// run once before any analysis; all analyses reuse its result.
func (p *Panacus) Count(ctx context.Context, occ []coverage.Occurrence) error {
	log := p.opts.logger.WithKind(p.store.Kind().String()).WithGroups(p.groups.Groups())
	log.InfoContext(ctx, "counting coverage",
		"items", p.store.Len(),
		"occurrences", len(occ),
	)

	cov, err := coverage.Count(ctx, p.store, p.groups, occ,
		coverage.WithParallelism(p.opts.parallelism))
	if err != nil {
		log.ErrorContext(ctx, "counting failed", "error", err)
		return err
	}
	p.cov = cov
	p.h = nil
	return nil
}

// Coverage returns the counting result.
func (p *Panacus) Coverage() (*coverage.Result, error) {
	if p.cov == nil {
		return nil, ErrNoCoverage
	}
	return p.cov, nil
}

// Hist returns the coverage histogram, deriving it from the counting
// result on first use.
func (p *Panacus) Hist() (*hist.Hist, error) {
	if p.cov == nil {
		return nil, ErrNoCoverage
	}
	if p.h == nil {
		p.h = p.cov.Histogram(p.store)
	}
	return p.h, nil
}

// Growth computes averaged growth curves, one per threshold spec.
func (p *Panacus) Growth(ctx context.Context, specs []growth.Spec) ([]growth.Curve, error) {
	h, err := p.Hist()
	if err != nil {
		return nil, err
	}
	return growth.Curves(ctx, h, specs, growth.WithParallelism(p.opts.parallelism))
}

// BindOrder binds an explicit group order by label. Mismatches between the
// order and the loaded groups are reported, not escalated; excluded groups
// simply drop out of ordered-mode computation.
func (p *Panacus) BindOrder(labels []string) (*gfa.OrderReport, error) {
	report, err := p.groups.SetOrder(labels)
	if err != nil {
		return nil, err
	}
	if !report.Empty() {
		p.opts.logger.Warn("explicit order does not match group set",
			"unknown", len(report.UnknownLabels),
			"excluded", len(report.ExcludedGroups),
		)
	}
	return report, nil
}

// OptimizeOrder derives a total order from coverage-profile similarity via
// hierarchical clustering and installs it as the active order.
func (p *Panacus) OptimizeOrder() error {
	if p.cov == nil {
		return ErrNoCoverage
	}
	d := cluster.Dissimilarity(p.cov.Profiles)
	tree := cluster.Agglomerate(d, p.opts.linkage)
	leaf := tree.LeafOrder()
	order := make([]gfa.GroupID, len(leaf))
	for i, ord := range leaf {
		order[i] = gfa.GroupID(ord)
	}
	if err := p.groups.SetOrderIDs(order); err != nil {
		return err
	}
	p.opts.logger.Info("derived group order from clustering",
		"linkage", p.opts.linkage.String(),
		"groups", len(order),
	)
	return nil
}

// OrderedGrowth computes exact growth curves along the active group order.
// The returned labels name the walked groups in order.
func (p *Panacus) OrderedGrowth(ctx context.Context, specs []growth.Spec) ([]growth.Curve, []string, error) {
	if p.cov == nil {
		return nil, nil, ErrNoCoverage
	}
	order := p.groups.Order()
	curves, err := growth.Ordered(ctx, p.cov, p.store, order, specs,
		growth.WithParallelism(p.opts.parallelism))
	if err != nil {
		return nil, nil, err
	}
	return curves, p.groups.OrderedLabels(), nil
}

// Similarity returns the pairwise group similarity matrix (1 - Jaccard
// distance of coverage profiles) with group labels in creation order.
func (p *Panacus) Similarity() (*cluster.Matrix, []string, error) {
	if p.cov == nil {
		return nil, nil, ErrNoCoverage
	}
	return cluster.Dissimilarity(p.cov.Profiles).Similarity(), p.groups.Labels(), nil
}

// WriteTable emits the full group x item coverage matrix.
func (p *Panacus) WriteTable(w io.Writer, optFns ...table.Option) error {
	if p.cov == nil {
		return ErrNoCoverage
	}
	return table.Write(w, p.store, p.groups, p.cov, optFns...)
}

// Summary returns the headline statistics of the loaded graph.
func (p *Panacus) Summary() gfa.Summary {
	return gfa.Summarize(p.store, p.groups)
}
