// Package cluster derives a total order of sample groups from the
// similarity of their coverage profiles: pairwise Jaccard dissimilarity,
// agglomerative clustering, and an in-order walk of the merge tree's
// leaves. Profile-similar groups end up adjacent, which keeps the ordered
// growth curve smooth instead of noisy.
//
// The same dissimilarity matrix backs the similarity analysis output.
package cluster

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Matrix is a symmetric n x n distance matrix over group ordinals, stored
// row-major in one flat slice.
type Matrix struct {
	n int
	d []float64
}

// NewMatrix creates a zeroed n x n matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, d: make([]float64, n*n)}
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// At returns the distance between groups i and j.
func (m *Matrix) At(i, j int) float64 { return m.d[i*m.n+j] }

func (m *Matrix) set(i, j int, v float64) {
	m.d[i*m.n+j] = v
	m.d[j*m.n+i] = v
}

func (m *Matrix) String() string {
	return fmt.Sprintf("cluster.Matrix(%dx%d)", m.n, m.n)
}

// Dissimilarity builds the group distance matrix from covered-item
// profiles. The distance is the union-normalized symmetric difference
// (Jaccard distance) of the two covered-item sets; two groups with no
// covered items at all count as identical.
func Dissimilarity(profiles []*roaring.Bitmap) *Matrix {
	n := len(profiles)
	m := NewMatrix(n)
	cards := make([]uint64, n)
	for i, p := range profiles {
		cards[i] = p.GetCardinality()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			inter := profiles[i].AndCardinality(profiles[j])
			union := cards[i] + cards[j] - inter
			if union == 0 {
				continue
			}
			m.set(i, j, float64(union-inter)/float64(union))
		}
	}
	return m
}

// Similarity returns 1 - distance for every pair, the form the similarity
// table reports.
func (m *Matrix) Similarity() *Matrix {
	out := NewMatrix(m.n)
	for i := range m.d {
		out.d[i] = 1 - m.d[i]
	}
	return out
}
