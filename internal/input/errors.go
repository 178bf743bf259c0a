package input

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Every error returned by this package that concerns a specific file is an *Error wrapping one of these.
var (
	ErrInputNotFound = errors.New("input not found")
	ErrInputNotAFile = errors.New("input is not a file")
	ErrReadFailure   = errors.New("read failure")
)

// Error describes a failure to obtain input from Path.
type Error struct {
	Kind error  // one of ErrInputNotFound, ErrInputNotAFile, ErrReadFailure
	Path string // empty when reading from a stream
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInputNotFound:
		return "cannot find file: " + e.Path
	case ErrInputNotAFile:
		return "is not a file: " + e.Path
	}
	path := e.Path
	if path == "" {
		path = "input"
	}
	if e.Err == nil {
		return fmt.Sprintf("read %s: %v", path, e.Kind)
	}
	return fmt.Sprintf("read %s: %v", path, e.Err)
}

// Is reports whether target is e's Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
