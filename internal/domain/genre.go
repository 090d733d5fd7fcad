package domain

import "context"

type Genre struct {
	ID   int
	Name string
}

type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	GetAll(ctx context.Context) ([]Genre, error)
}
