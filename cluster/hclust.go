package cluster

import "fmt"

// Linkage selects how the distance between merged clusters is derived.
type Linkage int

const (
	LinkageAverage Linkage = iota
	LinkageComplete
	LinkageSingle
)

func (l Linkage) String() string {
	switch l {
	case LinkageAverage:
		return "average"
	case LinkageComplete:
		return "complete"
	case LinkageSingle:
		return "single"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// ParseLinkage parses a linkage policy name.
func ParseLinkage(s string) (Linkage, error) {
	switch s {
	case "average", "":
		return LinkageAverage, nil
	case "complete":
		return LinkageComplete, nil
	case "single":
		return LinkageSingle, nil
	default:
		return 0, fmt.Errorf("unknown linkage %q", s)
	}
}

// Tree is the binary merge tree of agglomerative clustering, stored as an
// arena of index-addressed node records. Nodes 0..n-1 are the leaves
// (group ordinals); internal nodes follow in merge order, the root last.
// The tree exists only to be walked for a leaf order and is discarded
// afterwards.
type Tree struct {
	n     int
	nodes []treeNode
}

type treeNode struct {
	left, right int32 // -1 for leaves
	size        int32
	dist        float64 // merge distance, 0 for leaves
}

// Leaves returns the number of leaves.
func (t *Tree) Leaves() int { return t.n }

// Agglomerate clusters the n groups of the distance matrix bottom-up under
// the given linkage policy. Ties break toward the lowest slot pair, so the
// tree is deterministic for a given matrix.
func Agglomerate(d *Matrix, link Linkage) *Tree {
	n := d.N()
	t := &Tree{n: n, nodes: make([]treeNode, 0, max(2*n-1, 0))}
	for i := 0; i < n; i++ {
		t.nodes = append(t.nodes, treeNode{left: -1, right: -1, size: 1})
	}
	if n < 2 {
		return t
	}

	// Working matrix indexed by slot; slots compact as clusters merge.
	work := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			work[i*n+j] = d.At(i, j)
		}
	}
	slot := make([]int32, n) // slot -> arena node
	size := make([]int32, n) // slot -> cluster size
	for i := range slot {
		slot[i] = int32(i)
		size[i] = 1
	}

	active := n
	for active > 1 {
		// Closest pair among active slots.
		a, b := 0, 1
		best := work[0*n+1]
		for i := 0; i < active; i++ {
			for j := i + 1; j < active; j++ {
				if v := work[i*n+j]; v < best {
					best, a, b = v, i, j
				}
			}
		}

		merged := treeNode{
			left:  slot[a],
			right: slot[b],
			size:  size[a] + size[b],
			dist:  best,
		}
		t.nodes = append(t.nodes, merged)

		// Lance-Williams update against every other slot.
		sa, sb := float64(size[a]), float64(size[b])
		for k := 0; k < active; k++ {
			if k == a || k == b {
				continue
			}
			da, db := work[a*n+k], work[b*n+k]
			var v float64
			switch link {
			case LinkageSingle:
				v = min(da, db)
			case LinkageComplete:
				v = max(da, db)
			default:
				v = (sa*da + sb*db) / (sa + sb)
			}
			work[a*n+k] = v
			work[k*n+a] = v
		}
		slot[a] = int32(len(t.nodes) - 1)
		size[a] = merged.size

		// Compact: move the last active slot into b.
		last := active - 1
		if b != last {
			for k := 0; k < active; k++ {
				work[b*n+k] = work[last*n+k]
				work[k*n+b] = work[k*n+last]
			}
			work[b*n+b] = 0
			slot[b] = slot[last]
			size[b] = size[last]
		}
		active--
	}
	return t
}

// LeafOrder returns the in-order traversal of the tree's leaves: a
// permutation of the group ordinals 0..n-1.
func (t *Tree) LeafOrder() []int {
	order := make([]int, 0, t.n)
	if t.n == 0 {
		return order
	}
	stack := []int32{int32(len(t.nodes) - 1)}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := t.nodes[idx]
		if node.left < 0 {
			order = append(order, int(idx))
			continue
		}
		// Right first so the left subtree's leaves come out first.
		stack = append(stack, node.right, node.left)
	}
	return order
}
