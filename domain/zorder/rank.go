package zorder

import (
	"math"
	"sort"

	"flowedit/domain/core/entities"
)

// DistinctValues returns the sorted distinct z-index values currently in
// use by the given nodes. Ranks are defined over this set, so entities
// sharing a z-index occupy the same rank.
func DistinctValues(nodes []entities.Node) []float64 {
	seen := make(map[float64]struct{}, len(nodes))
	values := make([]float64, 0, len(nodes))
	for _, node := range nodes {
		if _, ok := seen[node.ZIndex]; ok {
			continue
		}
		seen[node.ZIndex] = struct{}{}
		values = append(values, node.ZIndex)
	}
	sort.Float64s(values)
	return values
}

// RaiseOne returns the z-index that moves an entity at current exactly
// one rank up: a value strictly between the next rank and the one above
// it. Only the moved entity needs rewriting. Returns current unchanged
// when it already holds the topmost rank.
func RaiseOne(distinct []float64, current float64) float64 {
	i := sort.SearchFloat64s(distinct, current)
	above := i + 1
	if above >= len(distinct) {
		return current
	}
	if above+1 < len(distinct) {
		return (distinct[above] + distinct[above+1]) / 2
	}
	return math.Floor(distinct[above]) + 1
}

// LowerOne returns the z-index that moves an entity at current exactly
// one rank down. Returns current unchanged when it already holds the
// bottom rank.
func LowerOne(distinct []float64, current float64) float64 {
	i := sort.SearchFloat64s(distinct, current)
	below := i - 1
	if below < 0 {
		return current
	}
	if below > 0 {
		return (distinct[below] + distinct[below-1]) / 2
	}
	return math.Ceil(distinct[below]) - 1
}
