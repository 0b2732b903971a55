package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// EntityID is a value object identifying a node or edge on the canvas.
// Value objects are immutable and have no identity beyond their value.
// IDs arrive from UI collaborators, so any non-empty string is accepted;
// fresh IDs minted by the core are UUIDs.
type EntityID struct {
	value string
}

// NewEntityID creates a new random EntityID
func NewEntityID() EntityID {
	return EntityID{value: uuid.New().String()}
}

// NewEntityIDFromString creates an EntityID from an existing string
func NewEntityIDFromString(id string) (EntityID, error) {
	if id == "" {
		return EntityID{}, errors.New("entity ID cannot be empty")
	}
	return EntityID{value: id}, nil
}

// String returns the string representation of the EntityID
func (id EntityID) String() string {
	return id.value
}

// Equals checks if two EntityIDs are equal
func (id EntityID) Equals(other EntityID) bool {
	return id.value == other.value
}

// IsZero checks if the EntityID is the zero value
func (id EntityID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("EntityID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// IDSet is a lookup set of entity IDs
type IDSet map[EntityID]struct{}

// NewIDSet builds a set from a list of IDs
func NewIDSet(ids ...EntityID) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the set holds the given ID
func (s IDSet) Contains(id EntityID) bool {
	_, ok := s[id]
	return ok
}

// SameIDSet reports whether two ID slices contain exactly the same IDs,
// regardless of order.
func SameIDSet(a, b []EntityID) bool {
	if len(a) != len(b) {
		return false
	}
	set := NewIDSet(a...)
	for _, id := range b {
		if !set.Contains(id) {
			return false
		}
	}
	return true
}
