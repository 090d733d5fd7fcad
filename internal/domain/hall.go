package domain

import "context"

type CinemaHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

// Capacity is the number of seats in the hall.
func (h CinemaHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type CinemaHallRepository interface {
	Create(ctx context.Context, hall *CinemaHall) error
	GetAll(ctx context.Context) ([]CinemaHall, error)
	GetById(ctx context.Context, id int) (*CinemaHall, error)
	Delete(ctx context.Context, id int) error
}
