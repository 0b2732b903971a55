// Package zorder keeps node stacking order well-formed. Incremental
// reorder commands write fractional z-index values so that only the
// moved entities are touched; Normalize later reassigns dense integers.
package zorder

import (
	"sort"

	"flowedit/domain/core/aggregates"
)

// Normalize reassigns dense integer z-indexes 0..n-1 to all nodes,
// preserving the relative order implied by their current values. Ties
// keep the nodes' original relative order. The pass is idempotent and
// cosmetic: it is never recorded in the undo history.
func Normalize(doc aggregates.Document) aggregates.Document {
	out := doc.Clone()

	order := make([]int, len(out.Nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return out.Nodes[order[a]].ZIndex < out.Nodes[order[b]].ZIndex
	})

	for rank, idx := range order {
		out.Nodes[idx].ZIndex = float64(rank)
	}
	return out
}
