package gridstore

import "errors"

// Sentinel errors for gridstore operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid's dimensions.
	ErrOutOfBounds = errors.New("gridstore: coordinate out of bounds")
	// ErrZeroDimension indicates a grid was constructed with a non-positive
	// width, height, or layer count.
	ErrZeroDimension = errors.New("gridstore: width, height and layers must all be positive")
	// ErrUnknownShape indicates a ShapeType value outside {TRACE, VIA_UP, VIA_DOWN}.
	ErrUnknownShape = errors.New("gridstore: unrecognized shape type")
	// ErrNoDesignRuleRadius indicates addCongestionAroundTerminal could not
	// resolve a radius for the requested design-rule subset and shape.
	ErrNoDesignRuleRadius = errors.New("gridstore: no design-rule radius for subset/shape")
)
