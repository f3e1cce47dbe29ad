package gfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"node", KindNode, false},
		{"edge", KindEdge, false},
		{"bp", KindBp, false},
		{"basepair", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestStore(t *testing.T) {
	s := NewStore(KindBp)
	ids := []ItemID{s.AddItem(10), s.AddItem(1), s.AddItem(5)}

	assert.Equal(t, []ItemID{0, 1, 2}, ids)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, uint32(10), s.Weight(0))
	assert.Equal(t, uint64(16), s.TotalWeight())
	assert.Equal(t, KindBp, s.Kind())
}

func TestGroupIndex(t *testing.T) {
	x := NewGroupIndex()
	pa := x.AddPath("A#1#chr1", "A")
	pa2 := x.AddPath("A#2#chr1", "A")
	pb := x.AddPath("B#1#chr1", "B")

	assert.Equal(t, 2, x.Groups())
	assert.Equal(t, 3, x.Paths())
	assert.Equal(t, x.PathGroup(pa), x.PathGroup(pa2))
	assert.NotEqual(t, x.PathGroup(pa), x.PathGroup(pb))
	assert.Equal(t, []string{"A", "B"}, x.Labels())
	assert.Equal(t, []string{"A", "B"}, x.OrderedLabels())

	id, ok := x.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, 1, x.Group(id).Ordinal)
}

func TestGroupIndexSetOrder(t *testing.T) {
	newIndex := func() *GroupIndex {
		x := NewGroupIndex()
		x.AddPath("a", "A")
		x.AddPath("b", "B")
		x.AddPath("c", "C")
		return x
	}

	t.Run("FullReorder", func(t *testing.T) {
		x := newIndex()
		report, err := x.SetOrder([]string{"C", "A", "B"})
		require.NoError(t, err)
		assert.True(t, report.Empty())
		assert.Equal(t, []string{"C", "A", "B"}, x.OrderedLabels())

		a, _ := x.Lookup("A")
		assert.Equal(t, 1, x.Group(a).Ordinal)
	})

	t.Run("MismatchesAreRecoverable", func(t *testing.T) {
		x := newIndex()
		report, err := x.SetOrder([]string{"C", "Z", "A"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Z"}, report.UnknownLabels)
		assert.Equal(t, []string{"B"}, report.ExcludedGroups)
		assert.Equal(t, []string{"C", "A"}, x.OrderedLabels())

		b, _ := x.Lookup("B")
		assert.Equal(t, -1, x.Group(b).Ordinal)
	})

	t.Run("DuplicateIsFatal", func(t *testing.T) {
		x := newIndex()
		_, err := x.SetOrder([]string{"A", "A"})
		assert.Error(t, err)
	})

	t.Run("NoMatchIsFatal", func(t *testing.T) {
		x := newIndex()
		_, err := x.SetOrder([]string{"X", "Y"})
		assert.Error(t, err)
	})
}

func TestGroupIndexSetOrderIDs(t *testing.T) {
	x := NewGroupIndex()
	x.AddPath("a", "A")
	x.AddPath("b", "B")
	x.AddPath("c", "C")

	require.NoError(t, x.SetOrderIDs([]GroupID{2, 0, 1}))
	assert.Equal(t, []string{"C", "A", "B"}, x.OrderedLabels())

	assert.Error(t, x.SetOrderIDs([]GroupID{0, 1}), "short order")
	assert.Error(t, x.SetOrderIDs([]GroupID{0, 1, 1}), "not a permutation")
	assert.Error(t, x.SetOrderIDs([]GroupID{0, 1, 7}), "out of range")
}

func TestSummarize(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		sum := Summarize(NewStore(KindNode), NewGroupIndex())
		assert.Equal(t, 0, sum.Items)
		assert.Equal(t, uint64(0), sum.TotalWeight)
		assert.Zero(t, sum.N50)
	})

	t.Run("Lengths", func(t *testing.T) {
		s := NewStore(KindBp)
		for _, w := range []uint32{2, 3, 4, 5, 6} {
			s.AddItem(w)
		}
		x := NewGroupIndex()
		x.AddPath("a", "A")
		x.AddPath("b", "B")

		sum := Summarize(s, x)
		assert.Equal(t, 5, sum.Items)
		assert.Equal(t, uint64(20), sum.TotalWeight)
		assert.Equal(t, 2, sum.Groups)
		assert.Equal(t, 2, sum.Paths)
		assert.InDelta(t, 4.0, sum.MeanWeight, 1e-12)
		assert.InDelta(t, 4.0, sum.MedianWeight, 1e-12)
		// Descending: 6+5=11 >= 10, so N50 is 5.
		assert.Equal(t, uint32(5), sum.N50)
	})
}
