package serviceerrors

import (
	"context"
	"errors"

	databaseerrors "shopapi/internal/database"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrContextCanceled  = errors.New("context canceled")
	ErrDeadlineExceeded = errors.New("deadline exceeded")
)

// Translate maps context and storage errors found in err's chain to their
// service equivalents. Anything else is returned unchanged.
func Translate(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return ErrContextCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrDeadlineExceeded
	case errors.Is(err, databaseerrors.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}

// IsExpected reports whether err is one of the service sentinels callers
// are expected to handle, as opposed to an internal failure.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrContextCanceled) ||
		errors.Is(err, ErrDeadlineExceeded)
}
