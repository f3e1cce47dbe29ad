package hist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHist(t *testing.T) {
	h := New("node", 3)
	assert.Equal(t, 3, h.Groups())
	assert.Len(t, h.Buckets, 4)

	h.Add(0, 7)
	h.Add(2, 1)
	h.Add(2, 4)
	assert.Equal(t, uint64(12), h.Total())

	require.NoError(t, h.Verify(12))
	assert.Error(t, h.Verify(13))
}

func TestHistEmpty(t *testing.T) {
	h := New("bp", 0)
	assert.Equal(t, 0, h.Groups())
	assert.Equal(t, uint64(0), h.Total())
	require.NoError(t, h.Verify(0))
}
