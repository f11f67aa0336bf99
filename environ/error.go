// Copyright © 2019 The Rurtle authors

package environ

import "fmt"

// RuntimeError is the single failure kind produced by builtin commands.  All
// runtime failures carry a descriptive message; callers do not need to
// distinguish error subtypes at the type level.  Fun names the builtin that
// produced the failure when it is known.
type RuntimeError struct {
	Fun string
	Err error
}

// Error implements the error interface.  The failing builtin's name is
// printed preceding the message when it is known.
func (e *RuntimeError) Error() string {
	if e.Fun != "" {
		return fmt.Sprintf("%s: %s", e.Fun, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying cause so wrapped I/O errors stay reachable
// through errors.Is and errors.As.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Errorf returns a runtime failure attributed to the named builtin.
func Errorf(fun, format string, v ...interface{}) error {
	return &RuntimeError{Fun: fun, Err: fmt.Errorf(format, v...)}
}
