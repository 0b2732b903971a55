package aggregates

import (
	"errors"

	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
)

// Document is one snapshot of the canvas: every node, edge and layer at
// a single point in history. Commands never mutate a snapshot they were
// given; they clone and return a new one, so the history manager can
// hand snapshots around without defensive copying.
type Document struct {
	Nodes  []entities.Node
	Edges  []entities.Edge
	Layers []entities.Layer
}

// NewDocument creates an empty document carrying the default layer
func NewDocument() Document {
	return Document{
		Nodes:  []entities.Node{},
		Edges:  []entities.Edge{},
		Layers: []entities.Layer{entities.DefaultLayer()},
	}
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	nodes := make([]entities.Node, len(d.Nodes))
	copy(nodes, d.Nodes)
	edges := make([]entities.Edge, len(d.Edges))
	copy(edges, d.Edges)
	layers := make([]entities.Layer, len(d.Layers))
	copy(layers, d.Layers)
	return Document{Nodes: nodes, Edges: edges, Layers: layers}
}

// HasNode reports whether a node with the given ID exists
func (d Document) HasNode(id valueobjects.EntityID) bool {
	_, ok := d.NodeByID(id)
	return ok
}

// NodeByID retrieves a node by ID
func (d Document) NodeByID(id valueobjects.EntityID) (entities.Node, bool) {
	for _, node := range d.Nodes {
		if node.ID.Equals(id) {
			return node, true
		}
	}
	return entities.Node{}, false
}

// HasEdge reports whether an edge with the given ID exists
func (d Document) HasEdge(id valueobjects.EntityID) bool {
	_, ok := d.EdgeByID(id)
	return ok
}

// EdgeByID retrieves an edge by ID
func (d Document) EdgeByID(id valueobjects.EntityID) (entities.Edge, bool) {
	for _, edge := range d.Edges {
		if edge.ID.Equals(id) {
			return edge, true
		}
	}
	return entities.Edge{}, false
}

// HasLayer reports whether a layer with the given ID exists
func (d Document) HasLayer(id valueobjects.LayerID) bool {
	_, ok := d.LayerByID(id)
	return ok
}

// LayerByID retrieves a layer by ID
func (d Document) LayerByID(id valueobjects.LayerID) (entities.Layer, bool) {
	for _, layer := range d.Layers {
		if layer.ID == id {
			return layer, true
		}
	}
	return entities.Layer{}, false
}

// MaxZIndex returns the highest z-index across all nodes, or 0 for an
// empty document
func (d Document) MaxZIndex() float64 {
	max := 0.0
	for i, node := range d.Nodes {
		if i == 0 || node.ZIndex > max {
			max = node.ZIndex
		}
	}
	return max
}

// MinZIndex returns the lowest z-index across all nodes, or 0 for an
// empty document
func (d Document) MinZIndex() float64 {
	min := 0.0
	for i, node := range d.Nodes {
		if i == 0 || node.ZIndex < min {
			min = node.ZIndex
		}
	}
	return min
}

// EdgesTouching returns every edge whose source or target is in the set
func (d Document) EdgesTouching(ids valueobjects.IDSet) []entities.Edge {
	var touched []entities.Edge
	for _, edge := range d.Edges {
		if ids.Contains(edge.Source) || ids.Contains(edge.Target) {
			touched = append(touched, edge)
		}
	}
	return touched
}

// ClearSelection returns the document with all selection flags cleared
func (d Document) ClearSelection() Document {
	out := d.Clone()
	for i := range out.Nodes {
		out.Nodes[i].Selected = false
	}
	for i := range out.Edges {
		out.Edges[i].Selected = false
	}
	return out
}

// Validate ensures document invariants
func (d Document) Validate() error {
	nodeIDs := make(valueobjects.IDSet, len(d.Nodes))
	for _, node := range d.Nodes {
		if nodeIDs.Contains(node.ID) {
			return errors.New("duplicate node ID in document")
		}
		nodeIDs[node.ID] = struct{}{}
	}

	edgeIDs := make(valueobjects.IDSet, len(d.Edges))
	for _, edge := range d.Edges {
		if edgeIDs.Contains(edge.ID) {
			return errors.New("duplicate edge ID in document")
		}
		edgeIDs[edge.ID] = struct{}{}

		if !nodeIDs.Contains(edge.Source) {
			return errors.New("edge references non-existent source node")
		}
		if !nodeIDs.Contains(edge.Target) {
			return errors.New("edge references non-existent target node")
		}
	}

	if !d.HasLayer(valueobjects.DefaultLayerID) {
		return errors.New("document is missing the default layer")
	}

	return nil
}
