package boxlayout

import "errors"

var (
	// ErrInvalidNode is returned for ids that were never created or have been
	// removed.
	ErrInvalidNode = errors.New("boxlayout: invalid node")

	// ErrChildIndexOutOfBounds is returned when a child index is past the end
	// of a node's children.
	ErrChildIndexOutOfBounds = errors.New("boxlayout: child index out of bounds")

	// ErrCycle is returned when attaching a node would make it its own
	// ancestor.
	ErrCycle = errors.New("boxlayout: node would become its own ancestor")
)
