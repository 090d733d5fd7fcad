package domain

import "context"

type Actor struct {
	ID        int
	FirstName string
	LastName  string
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

type ActorRepository interface {
	Create(ctx context.Context, actor *Actor) error
	GetAll(ctx context.Context) ([]Actor, error)
}
