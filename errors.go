package doodle

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scene graph and gradient engine.
var (
	// ErrMissingParent is returned when a drawable uses relative sizing
	// without being attached to a parent container.
	ErrMissingParent = errors.New("doodle: relative size axes require a parent")

	// ErrNotOwned is returned by Container.Remove when the drawable is not
	// a child of that container.
	ErrNotOwned = errors.New("doodle: drawable is not a child of this container")

	// ErrInsufficientStops is returned when a gradient has fewer than two stops.
	ErrInsufficientStops = errors.New("doodle: gradients require at least two stops")

	// ErrMissingDirection is returned when a linear gradient is drawn
	// without a direction.
	ErrMissingDirection = errors.New("doodle: linear gradients must specify a direction")

	// ErrNoImage is returned when a texture is rendered before an image
	// has been set.
	ErrNoImage = errors.New("doodle: texture has no image")

	// ErrNoFont is returned when a text drawable is rendered before a
	// font has been set.
	ErrNoFont = errors.New("doodle: text has no font")
)

// ResourceError is returned when an external resource (image file, font
// file, sprite-font glyph) is missing or cannot be decoded.
type ResourceError struct {
	// Path is the path of the resource that failed to load.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("doodle: resource %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
