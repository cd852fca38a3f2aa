package resolve

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a specifier did not map to an existing file after
// every fallback rule was tried.
var ErrNotFound = errors.New("module not found")

// ResolveError records which specifier failed to resolve and from where.
type ResolveError struct {
	From      string
	Specifier string
	Err       error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("cannot resolve %q from %s: %v", e.Specifier, e.From, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// IOFaultError is a filesystem failure other than "does not exist", such as a
// permission error or an unreadable package manifest. It is never treated as
// ErrNotFound.
type IOFaultError struct {
	Path string
	Err  error
}

func (e *IOFaultError) Error() string {
	return fmt.Sprintf("filesystem fault at %s: %v", e.Path, e.Err)
}

func (e *IOFaultError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a plain resolution miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIOFault reports whether err carries an IOFaultError.
func IsIOFault(err error) bool {
	var fault *IOFaultError
	return errors.As(err, &fault)
}

func notFound(from, spec string) error {
	return &ResolveError{From: from, Specifier: spec, Err: ErrNotFound}
}
