package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCinemaHallRepo struct {
	mock.Mock
	domain.CinemaHallRepository
}

func (m *MockCinemaHallRepo) Create(ctx context.Context, hall *domain.CinemaHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockCinemaHallRepo) GetAll(ctx context.Context) ([]domain.CinemaHall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CinemaHall), args.Error(1)
}

func (m *MockCinemaHallRepo) GetById(ctx context.Context, id int) (*domain.CinemaHall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CinemaHall), args.Error(1)
}

func (m *MockCinemaHallRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
