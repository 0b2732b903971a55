package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowedit/domain/core/valueobjects"
)

func moveOf(t *testing.T, id string, fromX, fromY, toX, toY float64) NodeMove {
	t.Helper()
	return NodeMove{
		ID:   mustID(t, id),
		From: valueobjects.NewPosition(fromX, fromY),
		To:   valueobjects.NewPosition(toX, toY),
	}
}

func TestMoveNodesCommand(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "a", 0, 0, 50, 60)})
	require.NoError(t, err)

	after, outcome := cmd.Execute(doc)
	assert.Equal(t, OutcomeApplied, outcome)
	moved, _ := after.NodeByID(mustID(t, "a"))
	assert.True(t, moved.Position.Equals(valueobjects.NewPosition(50, 60)))

	restored, outcome := cmd.Undo(after)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, doc, restored)
}

func TestMoveNodesCommandPartial(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd, err := NewMoveNodesCommand([]NodeMove{
		moveOf(t, "a", 0, 0, 10, 10),
		moveOf(t, "missing", 0, 0, 10, 10),
	})
	require.NoError(t, err)

	_, outcome := cmd.Execute(doc)
	assert.Equal(t, OutcomePartial, outcome)
}

func TestMoveNodesCommandMerge(t *testing.T) {
	first, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "a", 0, 0, 10, 10)})
	require.NoError(t, err)
	second, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "a", 10, 10, 30, 40)})
	require.NoError(t, err)

	merged, ok := first.Merge(second)
	require.True(t, ok)

	doc := threeNodeDoc(t)
	after, _ := merged.Execute(doc)
	moved, _ := after.NodeByID(mustID(t, "a"))
	assert.True(t, moved.Position.Equals(valueobjects.NewPosition(30, 40)), "merged keeps the latest destination")

	restored, _ := merged.Undo(after)
	assert.Equal(t, doc, restored, "merged undo restores the original start")

	assert.Equal(t, second.timestamp, merged.Timestamp(), "merged carries the later timestamp so a drag keeps collapsing")
}

func TestMoveNodesCommandMergeRejectsDifferentTargets(t *testing.T) {
	first, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "a", 0, 0, 10, 10)})
	require.NoError(t, err)
	second, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "b", 200, 0, 210, 10)})
	require.NoError(t, err)

	_, ok := first.Merge(second)
	assert.False(t, ok)
}

func TestMoveNodesCommandMergeRejectsOutsideWindow(t *testing.T) {
	first, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "a", 0, 0, 10, 10)})
	require.NoError(t, err)
	second, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "a", 10, 10, 30, 40)})
	require.NoError(t, err)
	second.timestamp = first.timestamp.Add(first.window + time.Millisecond)

	_, ok := first.Merge(second)
	assert.False(t, ok)
}

func TestMoveNodesCommandMergeRejectsOtherCommandTypes(t *testing.T) {
	first, err := NewMoveNodesCommand([]NodeMove{moveOf(t, "a", 0, 0, 10, 10)})
	require.NoError(t, err)
	other, err := NewDeleteNodesCommand([]valueobjects.EntityID{mustID(t, "a")})
	require.NoError(t, err)

	_, ok := first.Merge(other)
	assert.False(t, ok)
}

func TestResizeNodesCommandMerge(t *testing.T) {
	doc := threeNodeDoc(t)

	first, err := NewResizeNodesCommand([]NodeResize{{
		ID:   mustID(t, "a"),
		From: mustSize(t, 100, 50),
		To:   mustSize(t, 120, 60),
	}})
	require.NoError(t, err)
	second, err := NewResizeNodesCommand([]NodeResize{{
		ID:   mustID(t, "a"),
		From: mustSize(t, 120, 60),
		To:   mustSize(t, 160, 90),
	}})
	require.NoError(t, err)

	merged, ok := first.Merge(second)
	require.True(t, ok)

	after, _ := merged.Execute(doc)
	resized, _ := after.NodeByID(mustID(t, "a"))
	assert.True(t, resized.Size.Equals(mustSize(t, 160, 90)))

	restored, _ := merged.Undo(after)
	assert.Equal(t, doc, restored)
}
