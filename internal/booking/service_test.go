package booking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	sessionRepo *mocks.MockMovieSessionRepo
	ticketRepo  *mocks.MockTicketRepo
	orderRepo   *mocks.MockOrderRepo
	service     *Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.sessionRepo = new(mocks.MockMovieSessionRepo)
	s.ticketRepo = new(mocks.MockTicketRepo)
	s.orderRepo = new(mocks.MockOrderRepo)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewService(logger, s.sessionRepo, s.ticketRepo, s.orderRepo)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func testSession(id int) *domain.MovieSession {
	return &domain.MovieSession{
		ID:           id,
		ShowTime:     time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC),
		MovieID:      1,
		CinemaHallID: 1,
		CinemaHall:   &domain.CinemaHall{ID: 1, Name: "Blue", Rows: 10, SeatsInRow: 20},
	}
}

func (s *ServiceTestSuite) TestCreateTicket() {
	tests := []struct {
		name       string
		ticket     domain.Ticket
		setupMocks func()
		wantErr    error
	}{
		{
			name:   "persists ticket inside hall bounds",
			ticket: domain.Ticket{MovieSessionID: 1, OrderID: 1, Row: 3, Seat: 4},
			setupMocks: func() {
				s.sessionRepo.On("GetById", mock.Anything, 1).Return(testSession(1), nil)
				s.ticketRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Ticket")).Return(nil)
			},
		},
		{
			name:   "rejects row outside hall without touching storage",
			ticket: domain.Ticket{MovieSessionID: 1, OrderID: 1, Row: 11, Seat: 5},
			setupMocks: func() {
				s.sessionRepo.On("GetById", mock.Anything, 1).Return(testSession(1), nil)
			},
			wantErr: domain.ErrBoundsViolation,
		},
		{
			name:   "rejects ticket for unknown movie session",
			ticket: domain.Ticket{MovieSessionID: 42, OrderID: 1, Row: 1, Seat: 1},
			setupMocks: func() {
				s.sessionRepo.On("GetById", mock.Anything, 42).Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrInvalidReference,
		},
		{
			name:   "surfaces seat taken at commit",
			ticket: domain.Ticket{MovieSessionID: 1, OrderID: 1, Row: 3, Seat: 4},
			setupMocks: func() {
				s.sessionRepo.On("GetById", mock.Anything, 1).Return(testSession(1), nil)
				s.ticketRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Ticket")).
					Return(domain.ErrSeatAlreadyBooked)
			},
			wantErr: domain.ErrSeatAlreadyBooked,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			ticket := tt.ticket
			err := s.service.CreateTicket(context.Background(), &ticket)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}

			if errors.Is(tt.wantErr, domain.ErrBoundsViolation) || errors.Is(tt.wantErr, domain.ErrInvalidReference) {
				s.ticketRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
			}

			s.sessionRepo.AssertExpectations(s.T())
			s.ticketRepo.AssertExpectations(s.T())
		})
	}
}

func (s *ServiceTestSuite) TestCreateTicketPropagatesLookupFailure() {
	dbErr := fmt.Errorf("connection reset")
	s.sessionRepo.On("GetById", mock.Anything, 1).Return(nil, dbErr)

	err := s.service.CreateTicket(context.Background(), &domain.Ticket{MovieSessionID: 1, Row: 1, Seat: 1})

	s.ErrorIs(err, dbErr)
	s.NotErrorIs(err, domain.ErrInvalidReference)
	s.ticketRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ServiceTestSuite) TestUpdateTicket() {
	s.Run("validates against the new session before updating", func() {
		s.SetupTest()

		s.sessionRepo.On("GetById", mock.Anything, 2).Return(testSession(2), nil)
		s.ticketRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Ticket")).Return(nil)

		err := s.service.UpdateTicket(context.Background(), &domain.Ticket{ID: 7, MovieSessionID: 2, OrderID: 1, Row: 10, Seat: 20})

		s.NoError(err)
		s.ticketRepo.AssertExpectations(s.T())
	})

	s.Run("rejects update moving ticket outside the hall", func() {
		s.SetupTest()

		s.sessionRepo.On("GetById", mock.Anything, 2).Return(testSession(2), nil)

		err := s.service.UpdateTicket(context.Background(), &domain.Ticket{ID: 7, MovieSessionID: 2, OrderID: 1, Row: 10, Seat: 21})

		var boundsErr *domain.BoundsError
		s.Require().ErrorAs(err, &boundsErr)
		s.Len(boundsErr.Violations, 1)
		s.ticketRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})

	s.Run("reports missing ticket", func() {
		s.SetupTest()

		s.sessionRepo.On("GetById", mock.Anything, 2).Return(testSession(2), nil)
		s.ticketRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Ticket")).Return(domain.ErrRecordNotFound)

		err := s.service.UpdateTicket(context.Background(), &domain.Ticket{ID: 99, MovieSessionID: 2, OrderID: 1, Row: 1, Seat: 1})

		s.ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *ServiceTestSuite) TestPlaceOrder() {
	s.Run("rejects empty order", func() {
		s.SetupTest()

		err := s.service.PlaceOrder(context.Background(), &domain.Order{UserID: 1})

		s.ErrorIs(err, ErrEmptyOrder)
		s.orderRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("stores order when every ticket fits", func() {
		s.SetupTest()

		s.sessionRepo.On("GetById", mock.Anything, 1).Return(testSession(1), nil).Once()
		s.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)

		order := &domain.Order{
			UserID: 1,
			Tickets: []domain.Ticket{
				{MovieSessionID: 1, Row: 1, Seat: 1},
				{MovieSessionID: 1, Row: 1, Seat: 2},
			},
		}

		err := s.service.PlaceOrder(context.Background(), order)

		s.NoError(err)
		s.sessionRepo.AssertExpectations(s.T())
		s.orderRepo.AssertExpectations(s.T())
	})

	s.Run("reports every invalid ticket with its position", func() {
		s.SetupTest()

		s.sessionRepo.On("GetById", mock.Anything, 1).Return(testSession(1), nil).Once()
		s.sessionRepo.On("GetById", mock.Anything, 5).Return(nil, domain.ErrRecordNotFound).Once()

		order := &domain.Order{
			UserID: 1,
			Tickets: []domain.Ticket{
				{MovieSessionID: 1, Row: 1, Seat: 1},
				{MovieSessionID: 1, Row: 11, Seat: 21},
				{MovieSessionID: 5, Row: 1, Seat: 1},
			},
		}

		err := s.service.PlaceOrder(context.Background(), order)

		s.ErrorIs(err, domain.ErrBoundsViolation)
		s.ErrorIs(err, domain.ErrInvalidReference)

		joined, ok := err.(interface{ Unwrap() []error })
		s.Require().True(ok)

		var indexes []int
		for _, e := range joined.Unwrap() {
			var ticketErr *TicketError
			s.Require().ErrorAs(e, &ticketErr)
			indexes = append(indexes, ticketErr.Index)
		}
		s.Equal([]int{1, 2}, indexes)

		s.orderRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("surfaces seat taken by another order", func() {
		s.SetupTest()

		s.sessionRepo.On("GetById", mock.Anything, 1).Return(testSession(1), nil)
		s.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(domain.ErrSeatAlreadyBooked)

		err := s.service.PlaceOrder(context.Background(), &domain.Order{
			UserID:  1,
			Tickets: []domain.Ticket{{MovieSessionID: 1, Row: 3, Seat: 4}},
		})

		s.ErrorIs(err, domain.ErrSeatAlreadyBooked)
	})
}

func TestRejectionReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"bounds", &domain.BoundsError{}, "bounds"},
		{"taken", fmt.Errorf("ticket 0: %w", domain.ErrSeatAlreadyBooked), "taken"},
		{"unknown session", &domain.ReferenceError{Entity: domain.EntityMovieSession, ID: 9}, "invalid_reference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rejectionReason(tt.err); got != tt.want {
				t.Errorf("rejectionReason() = %q, want %q", got, tt.want)
			}
		})
	}
}
