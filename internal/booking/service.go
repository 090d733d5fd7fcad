package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/metinatakli/cinema-booking/internal/booking"

var ErrEmptyOrder = errors.New("order must contain at least one ticket")

// TicketError ties a validation failure to the position of the ticket
// inside an order. Index is zero-based.
type TicketError struct {
	Index int
	Err   error
}

func (e *TicketError) Error() string {
	return fmt.Sprintf("ticket %d: %v", e.Index, e.Err)
}

func (e *TicketError) Unwrap() error {
	return e.Err
}

type Service struct {
	logger   *slog.Logger
	sessions domain.MovieSessionRepository
	tickets  domain.TicketRepository
	orders   domain.OrderRepository

	booked   metric.Int64Counter
	rejected metric.Int64Counter
}

func NewService(
	logger *slog.Logger,
	sessions domain.MovieSessionRepository,
	tickets domain.TicketRepository,
	orders domain.OrderRepository) *Service {

	s := &Service{
		logger:   logger,
		sessions: sessions,
		tickets:  tickets,
		orders:   orders,
	}

	meter := otel.Meter(meterName)

	booked, err := meter.Int64Counter("booking.tickets.booked",
		metric.WithDescription("Tickets persisted after passing validation"))
	if err != nil {
		logger.Warn("failed to create booked tickets counter", "error", err)
		booked = noop.Int64Counter{}
	}

	rejected, err := meter.Int64Counter("booking.tickets.rejected",
		metric.WithDescription("Ticket writes rejected by bounds or seat uniqueness"))
	if err != nil {
		logger.Warn("failed to create rejected tickets counter", "error", err)
		rejected = noop.Int64Counter{}
	}

	s.booked = booked
	s.rejected = rejected

	return s
}

// ValidateTicket checks the ticket against the hall of its movie session.
// It does not consult existing tickets; seat uniqueness is decided by
// storage on commit.
func (s *Service) ValidateTicket(ctx context.Context, ticket *domain.Ticket) error {
	return newHallResolver(s.sessions).validate(ctx, ticket)
}

// CreateTicket validates the ticket and then persists it. A seat taken by
// a concurrent writer surfaces as domain.ErrSeatAlreadyBooked.
func (s *Service) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	err := s.ValidateTicket(ctx, ticket)
	if err != nil {
		s.reject(ctx, err, "movie_session_id", ticket.MovieSessionID, "row", ticket.Row, "seat", ticket.Seat)
		return err
	}

	err = s.tickets.Create(ctx, ticket)
	if err != nil {
		s.reject(ctx, err, "movie_session_id", ticket.MovieSessionID, "row", ticket.Row, "seat", ticket.Seat)
		return err
	}

	s.booked.Add(ctx, 1)

	return nil
}

func (s *Service) UpdateTicket(ctx context.Context, ticket *domain.Ticket) error {
	err := s.ValidateTicket(ctx, ticket)
	if err != nil {
		s.reject(ctx, err, "ticket_id", ticket.ID, "row", ticket.Row, "seat", ticket.Seat)
		return err
	}

	err = s.tickets.Update(ctx, ticket)
	if err != nil {
		s.reject(ctx, err, "ticket_id", ticket.ID, "row", ticket.Row, "seat", ticket.Seat)
		return err
	}

	return nil
}

// PlaceOrder validates every ticket of the order and stores the order with
// all of its tickets atomically. Validation failures of individual tickets
// are joined, each wrapped in a *TicketError.
func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) error {
	if len(order.Tickets) == 0 {
		return ErrEmptyOrder
	}

	resolver := newHallResolver(s.sessions)

	var errs []error
	for i := range order.Tickets {
		err := resolver.validate(ctx, &order.Tickets[i])
		if err == nil {
			continue
		}

		if !isRejection(err) {
			return err
		}

		errs = append(errs, &TicketError{Index: i, Err: err})
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		s.reject(ctx, err, "user_id", order.UserID, "tickets", len(order.Tickets))
		return err
	}

	err := s.orders.Create(ctx, order)
	if err != nil {
		s.reject(ctx, err, "user_id", order.UserID, "tickets", len(order.Tickets))
		return err
	}

	s.booked.Add(ctx, int64(len(order.Tickets)))

	return nil
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrBoundsViolation) ||
		errors.Is(err, domain.ErrInvalidReference) ||
		errors.Is(err, domain.ErrSeatAlreadyBooked)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrSeatAlreadyBooked):
		return "taken"
	case errors.Is(err, domain.ErrBoundsViolation):
		return "bounds"
	default:
		return "invalid_reference"
	}
}

func (s *Service) reject(ctx context.Context, err error, args ...any) {
	if !isRejection(err) {
		return
	}

	reason := rejectionReason(err)

	s.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	s.logger.InfoContext(ctx, "ticket rejected", append(args, "reason", reason, "error", err.Error())...)
}
