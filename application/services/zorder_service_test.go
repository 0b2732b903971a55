package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"flowedit/application/commands"
	"flowedit/application/history"
	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
)

func mustID(t *testing.T, s string) valueobjects.EntityID {
	t.Helper()
	id, err := valueobjects.NewEntityIDFromString(s)
	require.NoError(t, err)
	return id
}

func stackedDoc(t *testing.T) aggregates.Document {
	t.Helper()
	doc := aggregates.NewDocument()
	size, err := valueobjects.NewSize(100, 50)
	require.NoError(t, err)
	for i, label := range []string{"a", "b", "c"} {
		node := entities.NewNode(mustID(t, label), valueobjects.NewPosition(float64(i)*200, 0), size, label)
		node.ZIndex = float64(i)
		doc.Nodes = append(doc.Nodes, node)
	}
	return doc
}

func zOf(t *testing.T, doc aggregates.Document, id string) float64 {
	t.Helper()
	node, ok := doc.NodeByID(mustID(t, id))
	require.True(t, ok)
	return node.ZIndex
}

func TestZOrderServiceBringForward(t *testing.T) {
	manager := history.NewManager(stackedDoc(t), 0, zaptest.NewLogger(t))
	service := NewZOrderService(manager, zap.NewNop())

	doc, err := service.BringForward([]valueobjects.EntityID{mustID(t, "a")})
	require.NoError(t, err)
	assert.Equal(t, 1.5, zOf(t, doc, "a"))

	service.Flush()
	normalized := manager.Document()
	assert.Equal(t, 0.0, zOf(t, normalized, "b"))
	assert.Equal(t, 1.0, zOf(t, normalized, "a"))
	assert.Equal(t, 2.0, zOf(t, normalized, "c"))
}

func TestZOrderServiceNormalizationDoesNotOccupyHistory(t *testing.T) {
	manager := history.NewManager(stackedDoc(t), 0, zaptest.NewLogger(t))
	service := NewZOrderService(manager, zap.NewNop())

	_, err := service.BringToFront([]valueobjects.EntityID{mustID(t, "a")})
	require.NoError(t, err)
	service.Flush()

	assert.Equal(t, 1, manager.State().UndoStackSize)

	// Undo crosses the normalization back to the captured values
	doc, ok := manager.Undo()
	require.True(t, ok)
	assert.Equal(t, 0.0, zOf(t, doc, "a"))
	assert.Equal(t, 2.0, zOf(t, doc, "c"))
}

func TestZOrderServiceSendToBack(t *testing.T) {
	manager := history.NewManager(stackedDoc(t), 0, zaptest.NewLogger(t))
	service := NewZOrderService(manager, zap.NewNop())

	doc, err := service.SendToBack([]valueobjects.EntityID{mustID(t, "c")})
	require.NoError(t, err)
	assert.Equal(t, -1.0, zOf(t, doc, "c"))
}

func TestZOrderServiceNormalizationKeepsConcurrentEdits(t *testing.T) {
	manager := history.NewManager(stackedDoc(t), 0, zaptest.NewLogger(t))
	cfg := config.DefaultDomainConfig()
	cfg.NormalizeDebounce = time.Millisecond
	service := NewZOrderServiceWithConfig(manager, cfg, zap.NewNop())

	size, err := valueobjects.NewSize(100, 50)
	require.NoError(t, err)
	targets := []string{"a", "b", "c"}

	// Interleave commits with firing normalization timers; no committed
	// node may be lost to the rewrite
	const edits = 20
	for i := 0; i < edits; i++ {
		_, err := service.BringForward([]valueobjects.EntityID{mustID(t, targets[i%len(targets)])})
		require.NoError(t, err)

		fresh := entities.NewNode(mustID(t, fmt.Sprintf("fresh%d", i)), valueobjects.NewPosition(0, 0), size, "fresh")
		cmd, err := commands.NewCreateNodeCommand(fresh)
		require.NoError(t, err)
		_, outcome := manager.ExecuteCommand(cmd)
		require.Equal(t, commands.OutcomeApplied, outcome)

		time.Sleep(2 * time.Millisecond)
	}
	service.Flush()

	doc := manager.Document()
	for i := 0; i < edits; i++ {
		assert.True(t, doc.HasNode(mustID(t, fmt.Sprintf("fresh%d", i))))
	}
}

func TestZOrderServiceValidatesInput(t *testing.T) {
	manager := history.NewManager(stackedDoc(t), 0, zaptest.NewLogger(t))
	service := NewZOrderService(manager, zap.NewNop())

	_, err := service.SendBackward(nil)
	assert.Error(t, err)
}
