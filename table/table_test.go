package table

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codialab/panacus/coverage"
	"github.com/codialab/panacus/gfa"
)

func fixture(t *testing.T) (*gfa.Store, *gfa.GroupIndex, *coverage.Result) {
	t.Helper()
	store := gfa.NewStore(gfa.KindNode)
	store.AddItem(1)
	store.AddItem(1)

	groups := gfa.NewGroupIndex()
	pa := groups.AddPath("a", "A")
	pb := groups.AddPath("b", "B")

	res, err := coverage.Count(context.Background(), store, groups, []coverage.Occurrence{
		{Path: pa, Item: 0},
		{Path: pb, Item: 0},
		{Path: pb, Item: 1},
	})
	require.NoError(t, err)
	return store, groups, res
}

func TestWrite(t *testing.T) {
	store, groups, res := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, store, groups, res))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "node\tA\tB", lines[0])
	assert.Equal(t, "0\t1\t1", lines[1])
	assert.Equal(t, "1\t0\t1", lines[2])
}

func TestWriteFollowsActiveOrder(t *testing.T) {
	store, groups, res := fixture(t)
	_, err := groups.SetOrder([]string{"B", "A"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, store, groups, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "node\tB\tA", lines[0])
	assert.Equal(t, "1\t1\t0", lines[2])
}

func TestWriteWeightColumn(t *testing.T) {
	store, groups, res := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, store, groups, res, WithWeightColumn()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "node\tweight\tA\tB", lines[0])
	assert.Equal(t, "0\t1\t1\t1", lines[1])
}

func TestWriteLZ4(t *testing.T) {
	store, groups, res := fixture(t)

	var plain, compressed bytes.Buffer
	require.NoError(t, Write(&plain, store, groups, res))
	require.NoError(t, Write(&compressed, store, groups, res, WithLZ4()))

	decompressed, err := io.ReadAll(lz4.NewReader(&compressed))
	require.NoError(t, err)
	assert.Equal(t, plain.Bytes(), decompressed)
}
