package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	"flowedit/domain/zorder"
)

func reorder(t *testing.T, ids []string, direction ReorderDirection) *ReorderNodesCommand {
	t.Helper()
	entityIDs := make([]valueobjects.EntityID, len(ids))
	for i, s := range ids {
		entityIDs[i] = mustID(t, s)
	}
	cmd, err := NewReorderNodesCommand(entityIDs, direction)
	require.NoError(t, err)
	return cmd
}

func TestBringToFront(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd := reorder(t, []string{"a"}, BringToFront)
	after, outcome := cmd.Execute(doc)

	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, 3.0, zByLabel(after)["a"], "strictly above the previous maximum")

	restored, _ := cmd.Undo(after)
	assert.Equal(t, doc, restored)
}

func TestBringToFrontKeepsRelativeOrder(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd := reorder(t, []string{"b", "a"}, BringToFront)
	after, _ := cmd.Execute(doc)

	zs := zByLabel(after)
	assert.Less(t, zs["a"], zs["b"], "a stays below b, both above c")
	assert.Greater(t, zs["a"], zs["c"])
}

func TestSendToBack(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd := reorder(t, []string{"c"}, SendToBack)
	after, _ := cmd.Execute(doc)

	assert.Equal(t, -1.0, zByLabel(after)["c"], "strictly below the previous minimum")
}

func TestBringForwardAndSendBackwardScenario(t *testing.T) {
	doc := threeNodeDoc(t)

	forward := reorder(t, []string{"a"}, BringForward)
	after, outcome := forward.Execute(doc)
	require.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, 1.5, zByLabel(after)["a"], "between the next rank and the one above it")

	backward := reorder(t, []string{"c"}, SendBackward)
	after, outcome = backward.Execute(after)
	require.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, 1.25, zByLabel(after)["c"])

	// Visual order bottom to top is now b, c, a; normalization keeps it
	normalized := zorder.Normalize(after)
	assert.Equal(t, map[string]float64{"b": 0, "c": 1, "a": 2}, zByLabel(normalized))
}

func TestBringForwardAtTopIsHarmless(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd := reorder(t, []string{"c"}, BringForward)
	after, outcome := cmd.Execute(doc)
	assert.Equal(t, OutcomeSkipped, outcome, "nothing moved, so nothing to undo")
	assert.Equal(t, doc, after)
}

func TestReorderSkipsWhenOrderCannotChange(t *testing.T) {
	// Every node on the same rank: one step up or down has nowhere to go
	doc := aggregates.NewDocument()
	for _, label := range []string{"a", "b", "c"} {
		doc.Nodes = append(doc.Nodes, makeNode(t, label, 0, 0, 1))
	}

	for _, direction := range []ReorderDirection{BringForward, SendBackward} {
		cmd := reorder(t, []string{"b"}, direction)
		after, outcome := cmd.Execute(doc)
		assert.Equal(t, OutcomeSkipped, outcome, direction.String())
		assert.Equal(t, doc, after)

		_, outcome = cmd.Undo(after)
		assert.Equal(t, OutcomeSkipped, outcome)
	}
}

func TestReorderSkipsMissingTargets(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd := reorder(t, []string{"missing"}, BringToFront)
	after, outcome := cmd.Execute(doc)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, doc, after)

	_, outcome = cmd.Undo(after)
	assert.Equal(t, OutcomeSkipped, outcome)
}

func TestReorderUndoRestoresFractionalValues(t *testing.T) {
	doc := threeNodeDoc(t)

	forward := reorder(t, []string{"a"}, BringForward)
	mid, _ := forward.Execute(doc)

	front := reorder(t, []string{"b"}, BringToFront)
	after, _ := front.Execute(mid)

	restored, _ := front.Undo(after)
	assert.Equal(t, zByLabel(mid), zByLabel(restored))
}
