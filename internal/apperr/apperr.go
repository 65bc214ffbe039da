// Package apperr defines the error type used for user-facing errors
package apperr

import "fmt"

// Error is an application error. Package-level values act as templates:
// Fmt and Wrap return copies that still match the template with errors.Is.
type Error struct {
	Cause   error
	Context any
	Message string

	tmpl *Error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt returns a copy of the error with its message formatted using vals.
func (e *Error) Fmt(vals ...any) *Error {
	ne := e.clone()
	ne.Message = fmt.Sprintf(e.Message, vals...)

	return ne
}

// Wrap returns a copy of the error caused by err.
func (e *Error) Wrap(err error) *Error {
	ne := e.clone()
	ne.Cause = err

	return ne
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether e was derived from the same template as target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}

func (e *Error) clone() *Error {
	ne := *e
	ne.tmpl = e.root()

	return &ne
}
