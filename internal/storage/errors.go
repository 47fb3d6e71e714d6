package storage

import (
	"errors"
	"fmt"
)

// ErrNoDataFound reports a well-formed query that matched zero rows.
var ErrNoDataFound = errors.New("no data found")

// QueryError wraps a statement preparation, binding or execution failure
// together with the driver's native error text.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("database query error: %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ValidationError reports input rejected before it reached the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func queryErr(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}
