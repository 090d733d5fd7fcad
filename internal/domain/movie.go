package domain

import "context"

type Movie struct {
	ID          int
	Title       string
	Description string
	Actors      []Actor
	Genres      []Genre
}

// MovieFilters narrows a movie listing. Title matches case-insensitively
// as a substring; an empty Title matches every movie.
type MovieFilters struct {
	Title string
	Pagination
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context, filters MovieFilters) ([]Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Delete(ctx context.Context, id int) error
}
