package query

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFound is returned when a search term matches none of the
	// distinct values stored for the searched field.
	ErrFieldNotFound = errors.New("no matching field value")

	// ErrNoMatchInRankingBound is returned when the search term is
	// recognized but no player passes the ranking filter.
	ErrNoMatchInRankingBound = errors.New("no players within ranking bound")
)

// QueryError classifies an underlying store failure. It keeps raw driver
// errors from escaping the facade unwrapped.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: query failure: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func queryFailure(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}
