package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// PanicError is a panic converted into an error. gonum's mat package reports
// shape mismatches by panicking; Generate turns those into PanicErrors.
type PanicError struct {
	Operation string
	Value     interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// MarshalZerologObject adds the operation and panic value to a zerolog event.
func (e *PanicError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Str("panic", fmt.Sprint(e.Value)).
		Str("type", "PanicError")
}

// Recover converts a panic into an error assigned to *err. Use it with defer
// in a function with a named error result:
//
//	func (g *Generator) Generate(req Request) (data *mat.Dense, comps Components, err error) {
//	    defer errors.Recover(&err, "generate."+req.Tag())
//	    ...
//	}
//
// A panic after *err was set wraps the existing error.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = errors.Wrapf(*err, "panic in %s: %v", operation, r)
		return
	}
	*err = errors.WithStack(&PanicError{Operation: operation, Value: r})
}

// SafeExecute runs fn, converting a panic into an error.
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
