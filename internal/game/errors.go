package game

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error the engine returns. It always
// means the caller passed coordinates or counts it should never have passed.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected call.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrInvalidArgument, e.Msg)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func argError(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
