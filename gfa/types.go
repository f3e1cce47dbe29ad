package gfa

import "fmt"

// Kind selects what is being counted: graph segments, links between
// segments, or sequence basepairs.
type Kind uint8

const (
	KindNode Kind = iota
	KindEdge
	KindBp
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindBp:
		return "bp"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// ParseKind parses the lowercase kind names used in histogram files and
// run configurations.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "node":
		return KindNode, nil
	case "edge":
		return KindEdge, nil
	case "bp":
		return KindBp, nil
	default:
		return 0, fmt.Errorf("unknown count kind %q", s)
	}
}

// ItemID identifies a countable graph item (node, edge or basepair-weighted
// node). IDs are dense and assigned in load order.
type ItemID uint32

// PathID identifies a path/walk record of the loaded graph.
type PathID uint32

// GroupID identifies a sample group. Group identity is stable for the
// lifetime of a run; only the ordinal (position in the active total order)
// may be reassigned.
type GroupID uint16
