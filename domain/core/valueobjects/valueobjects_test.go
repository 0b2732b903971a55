package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityID(t *testing.T) {
	id := NewEntityID()
	assert.False(t, id.IsZero())

	same, err := NewEntityIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(same))

	_, err = NewEntityIDFromString("")
	assert.Error(t, err)
	assert.True(t, EntityID{}.IsZero())
}

func TestSameIDSet(t *testing.T) {
	a, _ := NewEntityIDFromString("a")
	b, _ := NewEntityIDFromString("b")
	c, _ := NewEntityIDFromString("c")

	assert.True(t, SameIDSet([]EntityID{a, b}, []EntityID{b, a}))
	assert.False(t, SameIDSet([]EntityID{a, b}, []EntityID{a, c}))
	assert.False(t, SameIDSet([]EntityID{a}, []EntityID{a, b}))
}

func TestLayerID(t *testing.T) {
	assert.True(t, DefaultLayerID.IsDefault())

	id, err := NewLayerIDFromString("layer-1")
	require.NoError(t, err)
	assert.False(t, id.IsDefault())
	assert.False(t, id.IsZero())

	_, err = NewLayerIDFromString("")
	assert.Error(t, err)
}

func TestPosition(t *testing.T) {
	p := NewPosition(3, 4)
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 4.0, p.Y())
	assert.True(t, p.Translate(1, -1).Equals(NewPosition(4, 3)))
	assert.True(t, p.Equals(NewPosition(3, 4)))
}

func TestSize(t *testing.T) {
	s, err := NewSize(100, 50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Width())
	assert.Equal(t, 50.0, s.Height())
	assert.False(t, s.IsZero())

	_, err = NewSize(-1, 10)
	assert.Error(t, err)
}

func TestStylePatch(t *testing.T) {
	assert.True(t, StylePatch{}.IsEmpty())

	fill := "#ff0000"
	dashed := true
	patch := StylePatch{Fill: &fill, Dashed: &dashed}
	assert.False(t, patch.IsEmpty())

	styled := patch.ApplyTo(DefaultStyle())
	assert.Equal(t, "#ff0000", styled.Fill)
	assert.True(t, styled.Dashed)
	assert.Equal(t, DefaultStyle().Stroke, styled.Stroke)
}

func TestStylePatchMergedWith(t *testing.T) {
	red := "#ff0000"
	green := "#00ff00"
	opacity := 0.5

	first := StylePatch{Fill: &red}
	second := StylePatch{Fill: &green, Opacity: &opacity}

	merged := first.MergedWith(second)
	require.NotNil(t, merged.Fill)
	assert.Equal(t, green, *merged.Fill)
	assert.Equal(t, opacity, *merged.Opacity)

	// Applying the merged patch equals applying both in sequence
	sequential := second.ApplyTo(first.ApplyTo(DefaultStyle()))
	assert.True(t, merged.ApplyTo(DefaultStyle()).Equals(sequential))
}
