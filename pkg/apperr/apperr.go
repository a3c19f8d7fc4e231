package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Services wrap these with fmt.Errorf("%w: ...")
// and controllers map them onto HTTP statuses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrProcessing         = errors.New("processing failure")
)

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func InvalidArgument(format string, args ...any) error {
	return wrap(ErrInvalidArgument, format, args...)
}

func Conflict(format string, args ...any) error {
	return wrap(ErrConflict, format, args...)
}

func PreconditionFailed(format string, args ...any) error {
	return wrap(ErrPreconditionFailed, format, args...)
}

func Processing(format string, args ...any) error {
	return wrap(ErrProcessing, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Message strips the sentinel prefix for client-facing output.
func Message(err error) string {
	msg := err.Error()
	for _, kind := range []error{ErrNotFound, ErrInvalidArgument, ErrConflict, ErrPreconditionFailed, ErrProcessing} {
		if errors.Is(err, kind) {
			return strings.TrimPrefix(msg, kind.Error()+": ")
		}
	}
	return msg
}
