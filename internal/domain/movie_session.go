package domain

import (
	"context"
	"time"
)

// MovieSession is a screening of a movie in a cinema hall. CinemaHall is
// populated by the repository on reads so the seat layout is at hand when
// tickets are validated.
type MovieSession struct {
	ID           int
	ShowTime     time.Time
	MovieID      int
	CinemaHallID int
	CinemaHall   *CinemaHall
}

type MovieSessionRepository interface {
	Create(ctx context.Context, session *MovieSession) error
	GetById(ctx context.Context, id int) (*MovieSession, error)
	Delete(ctx context.Context, id int) error
}
