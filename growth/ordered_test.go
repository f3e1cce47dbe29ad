package growth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codialab/panacus/coverage"
	"github.com/codialab/panacus/gfa"
)

// orderedFixture builds the reference scenario: groups A, B, C; item 0
// (weight 1) covered by A and B.
func orderedFixture(t *testing.T) (*coverage.Result, *gfa.Store, *gfa.GroupIndex) {
	t.Helper()
	store := gfa.NewStore(gfa.KindNode)
	store.AddItem(1)

	groups := gfa.NewGroupIndex()
	pa := groups.AddPath("a", "A")
	pb := groups.AddPath("b", "B")
	groups.AddPath("c", "C")

	res, err := coverage.Count(context.Background(), store, groups, []coverage.Occurrence{
		{Path: pa, Item: 0},
		{Path: pb, Item: 0},
	})
	require.NoError(t, err)
	return res, store, groups
}

func orderOf(t *testing.T, groups *gfa.GroupIndex, labels ...string) []gfa.GroupID {
	t.Helper()
	order := make([]gfa.GroupID, len(labels))
	for i, l := range labels {
		id, ok := groups.Lookup(l)
		require.True(t, ok)
		order[i] = id
	}
	return order
}

func TestOrderedReferenceScenario(t *testing.T) {
	res, store, groups := orderedFixture(t)
	order := orderOf(t, groups, "C", "A", "B")

	curves, err := Ordered(context.Background(), res, store, order, []Spec{{Coverage: 1}})
	require.NoError(t, err)
	require.Len(t, curves, 1)
	// C covers nothing; A's arrival makes item 0 present; B changes nothing.
	assert.Equal(t, []float64{0, 1, 1}, curves[0].Values)
}

func TestOrderedQuorum(t *testing.T) {
	res, store, groups := orderedFixture(t)
	order := orderOf(t, groups, "A", "B", "C")

	curves, err := Ordered(context.Background(), res, store, order, []Spec{
		{Coverage: 1},
		{Coverage: 1, Quorum: 1}, // core: all k groups must cover
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, curves[0].Values)
	// Core: present at k=1 (A covers), at k=2 (A and B cover), gone at k=3.
	assert.Equal(t, []float64{1, 1, 0}, curves[1].Values)
}

func TestOrderedSubsetOrder(t *testing.T) {
	// Groups missing from an explicit order contribute nothing and the
	// curve spans only the ordered groups.
	res, store, groups := orderedFixture(t)
	order := orderOf(t, groups, "C", "B")

	curves, err := Ordered(context.Background(), res, store, order, []Spec{{Coverage: 1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, curves[0].Values)
}

func TestOrderedMonotoneWithoutQuorum(t *testing.T) {
	store := gfa.NewStore(gfa.KindBp)
	for i := 0; i < 64; i++ {
		store.AddItem(uint32(1 + i%11))
	}
	groups := gfa.NewGroupIndex()
	var occ []coverage.Occurrence
	for g := 0; g < 10; g++ {
		p := groups.AddPath(string(rune('a'+g)), string(rune('A'+g)))
		for i := 0; i < 64; i += g + 1 {
			occ = append(occ, coverage.Occurrence{Path: p, Item: gfa.ItemID(i)})
		}
	}
	res, err := coverage.Count(context.Background(), store, groups, occ)
	require.NoError(t, err)

	curves, err := Ordered(context.Background(), res, store, groups.Order(), []Spec{{Coverage: 1}, {Coverage: 3}})
	require.NoError(t, err)
	for _, c := range curves {
		for k := 1; k < len(c.Values); k++ {
			assert.GreaterOrEqual(t, c.Values[k], c.Values[k-1], "spec %v dips at k=%d", c.Spec, k+1)
		}
	}
}

func TestOrderedEmpty(t *testing.T) {
	res, store, _ := orderedFixture(t)
	curves, err := Ordered(context.Background(), res, store, nil, []Spec{{Coverage: 1}})
	require.NoError(t, err)
	assert.Empty(t, curves[0].Values)
}

func TestOrderedMatchesAveragedAtFullSize(t *testing.T) {
	// At k = n both modes see all groups; the values must agree exactly.
	res, store, groups := orderedFixture(t)
	h := res.Histogram(store)
	specs := []Spec{{Coverage: 1}, {Coverage: 2}}

	avg, err := Curves(context.Background(), h, specs)
	require.NoError(t, err)
	ord, err := Ordered(context.Background(), res, store, groups.Order(), specs)
	require.NoError(t, err)
	for i := range specs {
		n := len(ord[i].Values)
		assert.InDelta(t, avg[i].Values[n-1], ord[i].Values[n-1], 1e-12, "spec %v", specs[i])
	}
}
