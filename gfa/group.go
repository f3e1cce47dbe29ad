package gfa

import (
	"fmt"
	"sort"
)

// Group is the unit of "sample" in growth statistics. Several paths may
// share a group label (e.g. haplotypes of one sample).
type Group struct {
	ID      GroupID
	Label   string
	Ordinal int // position in the active total order, -1 if excluded
}

// GroupIndex maps paths to groups and maintains the active total order of
// groups. Groups are created in first-appearance order; that order is also
// the initial total order.
type GroupIndex struct {
	groups    []Group
	byLabel   map[string]GroupID
	pathGroup []GroupID
	pathNames []string
	order     []GroupID
}

// NewGroupIndex creates an empty group index.
func NewGroupIndex() *GroupIndex {
	return &GroupIndex{byLabel: make(map[string]GroupID)}
}

// AddPath registers a path under a group label and returns the path's ID.
// The group is created on first appearance of its label.
func (x *GroupIndex) AddPath(name, group string) PathID {
	gid, ok := x.byLabel[group]
	if !ok {
		gid = GroupID(len(x.groups))
		x.byLabel[group] = gid
		x.groups = append(x.groups, Group{ID: gid, Label: group, Ordinal: len(x.order)})
		x.order = append(x.order, gid)
	}
	x.pathGroup = append(x.pathGroup, gid)
	x.pathNames = append(x.pathNames, name)
	return PathID(len(x.pathGroup) - 1)
}

// Groups returns the number of groups.
func (x *GroupIndex) Groups() int { return len(x.groups) }

// Paths returns the number of registered paths.
func (x *GroupIndex) Paths() int { return len(x.pathGroup) }

// Group returns the group record for an ID.
func (x *GroupIndex) Group(id GroupID) Group { return x.groups[id] }

// Lookup returns the group carrying the given label.
func (x *GroupIndex) Lookup(label string) (GroupID, bool) {
	id, ok := x.byLabel[label]
	return id, ok
}

// PathGroup returns the group a path belongs to.
func (x *GroupIndex) PathGroup(p PathID) GroupID { return x.pathGroup[p] }

// Labels returns all group labels in group-creation order.
func (x *GroupIndex) Labels() []string {
	labels := make([]string, len(x.groups))
	for i, g := range x.groups {
		labels[i] = g.Label
	}
	return labels
}

// Order returns a copy of the active total order. Excluded groups (dropped
// by an explicit order binding) do not appear.
func (x *GroupIndex) Order() []GroupID {
	out := make([]GroupID, len(x.order))
	copy(out, x.order)
	return out
}

// OrderedLabels returns the labels of the active total order.
func (x *GroupIndex) OrderedLabels() []string {
	labels := make([]string, len(x.order))
	for i, id := range x.order {
		labels[i] = x.groups[id].Label
	}
	return labels
}

// OrderReport lists the non-fatal mismatches of an explicit order binding.
// Both conditions are recoverable: unknown names are ignored, unnamed
// groups are excluded from ordered-mode computation.
type OrderReport struct {
	// UnknownLabels are order entries naming no group of the loaded graph.
	UnknownLabels []string
	// ExcludedGroups are loaded groups the order does not mention.
	ExcludedGroups []string
}

// Empty reports whether the binding matched the group set exactly.
func (r *OrderReport) Empty() bool {
	return len(r.UnknownLabels) == 0 && len(r.ExcludedGroups) == 0
}

// SetOrder binds an externally supplied total order by group label. Ordinals
// are reassigned to match; groups absent from the order keep their identity
// but get ordinal -1 and drop out of Order(). An order matching no group at
// all is an error.
func (x *GroupIndex) SetOrder(labels []string) (*OrderReport, error) {
	report := &OrderReport{}
	order := make([]GroupID, 0, len(labels))
	seen := make(map[GroupID]bool, len(labels))
	for _, label := range labels {
		id, ok := x.byLabel[label]
		if !ok {
			report.UnknownLabels = append(report.UnknownLabels, label)
			continue
		}
		if seen[id] {
			return nil, fmt.Errorf("group %q appears twice in explicit order", label)
		}
		seen[id] = true
		order = append(order, id)
	}
	if len(order) == 0 && len(x.groups) > 0 {
		return nil, fmt.Errorf("explicit order matches none of %d groups", len(x.groups))
	}
	for i := range x.groups {
		if !seen[x.groups[i].ID] {
			report.ExcludedGroups = append(report.ExcludedGroups, x.groups[i].Label)
		}
	}
	sort.Strings(report.ExcludedGroups)
	x.applyOrder(order)
	return report, nil
}

// SetOrderIDs binds a derived total order given as group IDs. The order must
// be a permutation of the full group set.
func (x *GroupIndex) SetOrderIDs(order []GroupID) error {
	if len(order) != len(x.groups) {
		return fmt.Errorf("derived order has %d entries for %d groups", len(order), len(x.groups))
	}
	seen := make([]bool, len(x.groups))
	for _, id := range order {
		if int(id) >= len(x.groups) || seen[id] {
			return fmt.Errorf("derived order is not a permutation of the group set")
		}
		seen[id] = true
	}
	x.applyOrder(order)
	return nil
}

func (x *GroupIndex) applyOrder(order []GroupID) {
	for i := range x.groups {
		x.groups[i].Ordinal = -1
	}
	for pos, id := range order {
		x.groups[id].Ordinal = pos
	}
	x.order = order
}
