package gg

import "errors"

// Sentinel errors for the engine's error taxonomy. Callers should use
// errors.Is against these values; wrapped errors (via fmt.Errorf with
// %w) carry additional context but still match.
var (
	// ErrInvalidDimension is raised when a Surface is constructed
	// larger than 16384 in either axis, or with area exceeding 2^28
	// pixels.
	ErrInvalidDimension = errors.New("gg: invalid surface dimension")

	// ErrNonFiniteInput is raised when a coordinate, radius, or matrix
	// element is NaN or +/-Inf.
	ErrNonFiniteInput = errors.New("gg: non-finite input")

	// ErrNegativeRadius is raised by arcTo or a radial gradient given
	// a negative radius.
	ErrNegativeRadius = errors.New("gg: negative radius")

	// ErrDegenerateRadialGradient is raised when a radial gradient's
	// inner and outer circles are identical.
	ErrDegenerateRadialGradient = errors.New("gg: degenerate radial gradient")

	// ErrNonInvertibleTransform is raised by Matrix.Invert on a
	// singular matrix (|det| < 1e-10).
	ErrNonInvertibleTransform = errors.New("gg: non-invertible transform")

	// ErrShapeMismatch is part of the error taxonomy, but no function
	// in this module returns it: intersecting two clip masks of
	// different dimensions is a silent no-op (see internal/clip's
	// Mask.Intersect).
	ErrShapeMismatch = errors.New("gg: shape mismatch")

	// ErrInvalidArgumentCount is returned by Context.DrawImageSub (and
	// so by DrawImage and DrawImageScaled) when a source or destination
	// width or height is zero or negative.
	ErrInvalidArgumentCount = errors.New("gg: invalid argument count")

	// ErrSurfaceSerializationFailure is the sentinel a BMP (or other)
	// external serializer should raise on a malformed surface. This
	// package defines it for interface completeness; it does not
	// implement a serializer itself.
	ErrSurfaceSerializationFailure = errors.New("gg: surface serialization failure")
)
