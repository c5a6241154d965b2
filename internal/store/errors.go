package store

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationNotFound is returned when no default sheet location can be
	// determined for the platform.
	ErrLocationNotFound = errors.New("unable to find sheet file location")
	// ErrNotFound is returned when the sheet document does not exist.
	ErrNotFound = errors.New("sheet file not found")
)

// ReadError wraps a failure reading the sheet document.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read sheet %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError wraps a failure decoding the sheet document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to parse sheet: %v", e.Err)
	}
	return fmt.Sprintf("unable to parse sheet %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError wraps a failure writing the sheet document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write sheet %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
