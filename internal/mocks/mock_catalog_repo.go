package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockGenreRepo struct {
	CreateFunc func(ctx context.Context, genre *domain.Genre) error
	GetAllFunc func(ctx context.Context) ([]domain.Genre, error)
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	return m.CreateFunc(ctx, genre)
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	return m.GetAllFunc(ctx)
}

type MockActorRepo struct {
	CreateFunc func(ctx context.Context, actor *domain.Actor) error
	GetAllFunc func(ctx context.Context) ([]domain.Actor, error)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) GetAll(ctx context.Context) ([]domain.Actor, error) {
	return m.GetAllFunc(ctx)
}
