// Package group computes the consecutive groups a combine operation acts
// on: maximal runs of selected segments that are adjacent in the current
// segment order. A single selected segment never forms a group; the unit
// of a combine is a run of at least two.
package group

import (
	"fmt"
	"strings"

	"github.com/avkit/segcut/internal/selection"
)

// Group is an ordered run of at least two segment ids, adjacent in the
// segment order. Groups are derived values, computed on demand and never
// stored.
type Group []string

// Resolve computes the committed groups for the given segment order and
// selection. Adjacency is defined by position in the full order, not by
// adjacency within the selection: for order [a b c d e] and selection
// {a, b, d, e} the result is [[a b] [d e]], while {a, c} yields nothing.
//
// The result is deterministic: groups are pairwise disjoint, each has at
// least two members, and groups appear in the same relative order as their
// first member appears in the segment order.
func Resolve(order []string, selected *selection.Tracker) []Group {
	index := make(map[string]int, len(order))
	inOrder := make([]string, 0, selected.Len())
	for i, id := range order {
		index[id] = i
		if selected.Contains(id) {
			inOrder = append(inOrder, id)
		}
	}
	if len(inOrder) < 2 {
		return nil
	}

	var groups []Group
	current := Group{inOrder[0]}
	commit := func() {
		if len(current) >= 2 {
			groups = append(groups, current)
		}
	}
	for _, id := range inOrder[1:] {
		prev := current[len(current)-1]
		if index[id] == index[prev]+1 {
			current = append(current, id)
			continue
		}
		commit()
		current = Group{id}
	}
	commit()
	return groups
}

// Label formats the groups for the combine button. With no groups it is
// the raw selection count; otherwise each group renders as "first,last"
// for exactly two members or "first-last" for more, joined by " & ".
func Label(groups []Group, selectedCount int) string {
	if len(groups) == 0 {
		return fmt.Sprintf("%d", selectedCount)
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		sep := "-"
		if len(g) == 2 {
			sep = ","
		}
		parts[i] = g[0] + sep + g[len(g)-1]
	}
	return strings.Join(parts, " & ")
}

// ButtonText is the full combine button caption.
func ButtonText(groups []Group, selectedCount int) string {
	if len(groups) == 0 {
		return fmt.Sprintf("Combine %d", selectedCount)
	}
	return "Combine " + Label(groups, selectedCount)
}

// Tooltip explains the current combine state: it distinguishes a selection
// too small to combine from one that is big enough but has no adjacent
// run, and otherwise reports how many groups are ready.
func Tooltip(groups []Group, selectedCount int) string {
	switch {
	case len(groups) > 0:
		noun := "groups"
		if len(groups) == 1 {
			noun = "group"
		}
		return fmt.Sprintf("%d %s ready to combine", len(groups), noun)
	case selectedCount >= 2:
		return "Select consecutive segments to combine"
	default:
		return "Select atleast 2 segments to combine"
	}
}
