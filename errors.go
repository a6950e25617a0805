package collisions

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by body construction and index operations.
// Match with errors.Is; returned errors carry context via wrapping.
var (
	// ErrInvalidGeometry is returned when a body cannot be constructed
	// from the given parameters (e.g. a polygon with fewer than 3 points).
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrNotIndexed is returned when removing or refitting a body that is
	// not currently in the spatial index. The index is left unmodified.
	ErrNotIndexed = errors.New("body not indexed")

	// ErrAlreadyIndexed is returned when inserting a body that already has
	// a leaf in the spatial index. A body is indexed at most once.
	ErrAlreadyIndexed = errors.New("body already indexed")
)

// invalidf wraps ErrInvalidGeometry with a formatted description.
func invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidGeometry)...)
}
