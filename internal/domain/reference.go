package domain

import "fmt"

const (
	EntityActor        = "actor"
	EntityGenre        = "genre"
	EntityMovie        = "movie"
	EntityCinemaHall   = "cinema hall"
	EntityMovieSession = "movie session"
	EntityOrder        = "order"
	EntityUser         = "user"
)

// ReferenceError reports a write that points at a record which does not
// exist. ID is zero when storage did not say which key was missing.
type ReferenceError struct {
	Entity string
	ID     int
}

func (e *ReferenceError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
	}

	return fmt.Sprintf("%s does not exist", e.Entity)
}

func (e *ReferenceError) Unwrap() error {
	return ErrInvalidReference
}
