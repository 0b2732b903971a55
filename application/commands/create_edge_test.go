package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowedit/domain/core/entities"
	pkgerrors "flowedit/pkg/errors"
)

func TestCreateEdgeCommand(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd, err := NewCreateEdgeCommand(entities.NewEdge(mustID(t, "bc"), mustID(t, "b"), mustID(t, "c")))
	require.NoError(t, err)

	after, outcome := cmd.Execute(doc)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.True(t, after.HasEdge(mustID(t, "bc")))

	restored, outcome := cmd.Undo(after)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, doc, restored)
}

func TestCreateEdgeCommandSkipsMissingEndpoint(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd, err := NewCreateEdgeCommand(entities.NewEdge(mustID(t, "cx"), mustID(t, "c"), mustID(t, "missing")))
	require.NoError(t, err)

	after, outcome := cmd.Execute(doc)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, doc, after)
}

func TestCreateEdgeCommandSkipsDuplicateID(t *testing.T) {
	doc := threeNodeDoc(t)

	cmd, err := NewCreateEdgeCommand(entities.NewEdge(mustID(t, "ab"), mustID(t, "b"), mustID(t, "c")))
	require.NoError(t, err)

	_, outcome := cmd.Execute(doc)
	assert.Equal(t, OutcomeSkipped, outcome)
}

func TestCreateEdgeCommandValidation(t *testing.T) {
	_, err := NewCreateEdgeCommand(entities.Edge{ID: mustID(t, "e")})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}
