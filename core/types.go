package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration construction.
var (
	// ErrNoContainers indicates a configuration with zero containers.
	ErrNoContainers = errors.New("core: configuration has no containers")

	// ErrCapacityExceeded indicates a container holding more segments than the capacity.
	ErrCapacityExceeded = errors.New("core: container exceeds capacity")

	// ErrEmptyColor indicates a segment whose colour name is the empty string.
	ErrEmptyColor = errors.New("core: empty colour name")

	// ErrTooManyColors indicates more distinct colours than a Palette can intern.
	ErrTooManyColors = errors.New("core: too many distinct colours")

	// ErrUnknownGoal is returned by ParseGoal for an unrecognised token.
	ErrUnknownGoal = errors.New("core: unknown goal")
)

// DefaultCapacity is used when the capacity cannot be inferred
// because every container is empty.
const DefaultCapacity = 4

// MaxColors is the number of distinct colours one Palette can hold.
// Colour 0 is reserved as the container separator in Configuration.Key.
const MaxColors = 255

// Color is an interned segment colour. The zero Color is never assigned.
type Color uint8

// Move pours from container From onto container To (0-based indices).
type Move struct {
	From int
	To   int
}

// String renders the move as "from->to" using 0-based indices.
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}
