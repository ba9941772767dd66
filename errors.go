package quadtree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

const (
	// ErrTypeArgument is the type of errors caused by a missing or
	// mistyped constructor argument.
	ErrTypeArgument = "argument"

	// ErrTypeRange is the type of errors caused by a constructor argument
	// outside its allowed range.
	ErrTypeRange = "range"
)

// IsArgumentError reports whether err was returned because a constructor
// argument was missing or of the wrong type.
func IsArgumentError(err error) bool {
	return errors.IsType(err, ErrTypeArgument)
}

// IsRangeError reports whether err was returned because a constructor
// argument was out of range.
func IsRangeError(err error) bool {
	return errors.IsType(err, ErrTypeRange)
}

func errBoundaryMissing() error {
	return errors.New("boundary is null or undefined").
		WithType(ErrTypeArgument)
}

func errBoundaryType(boundary any) error {
	return errors.New("boundary should be a Rectangle").
		WithType(ErrTypeArgument).
		WithTag("boundary_type", typeName(boundary))
}

func errCapacityType(capacity any) error {
	return errors.Newf("capacity should be a number but is a %s", typeName(capacity)).
		WithType(ErrTypeArgument)
}

func errCapacityRange(capacity any) error {
	return errors.New("capacity must be greater than 0").
		WithType(ErrTypeRange).
		WithTag("capacity", capacity)
}
