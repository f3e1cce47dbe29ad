package bitrow

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	m := New(3, 70) // two words per row

	m.Set(0, 0)
	m.Set(0, 63)
	m.Set(0, 64)
	m.Set(2, 69)
	m.Set(2, 69) // idempotent

	assert.True(t, m.Test(0, 0))
	assert.True(t, m.Test(0, 63))
	assert.True(t, m.Test(0, 64))
	assert.False(t, m.Test(0, 1))
	assert.True(t, m.Test(2, 69))

	assert.Equal(t, 3, m.RowCount(0))
	assert.Equal(t, 0, m.RowCount(1))
	assert.Equal(t, 1, m.RowCount(2))
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 70, m.Cols())
}

func TestMatrixConcurrentSet(t *testing.T) {
	const rows, cols = 64, 128
	m := New(rows, cols)

	// Every worker sets one column across all rows; all workers race on
	// shared words. The OR merge must make the result exact regardless.
	var wg sync.WaitGroup
	for c := 0; c < cols; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rows; r++ {
				m.Set(r, c)
			}
		}()
	}
	wg.Wait()

	for r := 0; r < rows; r++ {
		assert.Equal(t, cols, m.RowCount(r))
	}
}
