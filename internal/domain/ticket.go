package domain

import "context"

type Ticket struct {
	ID             int
	MovieSessionID int
	OrderID        int
	Row            int
	Seat           int
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetById(ctx context.Context, id int) (*Ticket, error)
	GetByMovieSessionId(ctx context.Context, sessionId int) ([]Ticket, error)
	Delete(ctx context.Context, id int) error
}
