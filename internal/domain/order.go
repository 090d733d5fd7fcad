package domain

import (
	"context"
	"time"
)

type Order struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

type OrderRepository interface {
	// Create stores the order together with its tickets in a single
	// transaction. Ticket IDs and OrderIDs are filled in on success.
	Create(ctx context.Context, order *Order) error
	GetById(ctx context.Context, id int) (*Order, error)
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]Order, *Metadata, error)
	Delete(ctx context.Context, id int) error
}
