package domain

import (
	"fmt"
	"strings"
)

const (
	FieldRow  = "row"
	FieldSeat = "seat"
)

// BoundsViolation describes a single ticket coordinate lying outside the
// hall it was issued for.
type BoundsViolation struct {
	Field string
	Limit int
	Given int
}

func (v BoundsViolation) Message() string {
	unit := "rows"
	if v.Field == FieldSeat {
		unit = "seats"
	}

	return fmt.Sprintf("there are only %d %s but %d were given", v.Limit, unit, v.Given)
}

// BoundsError collects every coordinate of a ticket that does not fit the
// hall. It matches ErrBoundsViolation under errors.Is.
type BoundsError struct {
	Violations []BoundsViolation
}

func (e *BoundsError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message()
	}

	return strings.Join(msgs, "; ")
}

func (e *BoundsError) Unwrap() error {
	return ErrBoundsViolation
}
