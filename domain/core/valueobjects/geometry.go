package valueobjects

import pkgerrors "flowedit/pkg/errors"

// Position is a value object for a node's canvas coordinates
type Position struct {
	x float64
	y float64
}

// NewPosition creates a position
func NewPosition(x, y float64) Position {
	return Position{x: x, y: y}
}

// X returns the horizontal coordinate
func (p Position) X() float64 {
	return p.x
}

// Y returns the vertical coordinate
func (p Position) Y() float64 {
	return p.y
}

// Equals checks if two positions are equal
func (p Position) Equals(other Position) bool {
	return p.x == other.x && p.y == other.y
}

// Translate returns the position shifted by the given deltas
func (p Position) Translate(dx, dy float64) Position {
	return Position{x: p.x + dx, y: p.y + dy}
}

// Size is a value object for a node's width and height
type Size struct {
	width  float64
	height float64
}

// NewSize creates a size with validation
func NewSize(width, height float64) (Size, error) {
	if width < 0 || height < 0 {
		return Size{}, pkgerrors.NewValidationError("size dimensions cannot be negative")
	}
	return Size{width: width, height: height}, nil
}

// Width returns the width
func (s Size) Width() float64 {
	return s.width
}

// Height returns the height
func (s Size) Height() float64 {
	return s.height
}

// Equals checks if two sizes are equal
func (s Size) Equals(other Size) bool {
	return s.width == other.width && s.height == other.height
}

// IsZero checks if the size is the zero value
func (s Size) IsZero() bool {
	return s.width == 0 && s.height == 0
}
