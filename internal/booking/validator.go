// Package booking gates every ticket write through the hall bounds check
// before handing it to storage, where seat uniqueness is enforced.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

// ValidateSeat reports whether row and seat fit inside hall. Both
// coordinates are checked; every violation is returned in a single
// *domain.BoundsError.
func ValidateSeat(hall domain.CinemaHall, row, seat int) error {
	var violations []domain.BoundsViolation

	if row < 1 || row > hall.Rows {
		violations = append(violations, domain.BoundsViolation{
			Field: domain.FieldRow,
			Limit: hall.Rows,
			Given: row,
		})
	}

	if seat < 1 || seat > hall.SeatsInRow {
		violations = append(violations, domain.BoundsViolation{
			Field: domain.FieldSeat,
			Limit: hall.SeatsInRow,
			Given: seat,
		})
	}

	if len(violations) > 0 {
		return &domain.BoundsError{Violations: violations}
	}

	return nil
}

// hallResolver memoizes session lookups for the lifetime of one operation.
type hallResolver struct {
	sessions domain.MovieSessionRepository
	halls    map[int]domain.CinemaHall
}

func newHallResolver(sessions domain.MovieSessionRepository) *hallResolver {
	return &hallResolver{
		sessions: sessions,
		halls:    make(map[int]domain.CinemaHall),
	}
}

func (r *hallResolver) hallOf(ctx context.Context, sessionId int) (domain.CinemaHall, error) {
	if hall, ok := r.halls[sessionId]; ok {
		return hall, nil
	}

	session, err := r.sessions.GetById(ctx, sessionId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.CinemaHall{}, &domain.ReferenceError{Entity: domain.EntityMovieSession, ID: sessionId}
		}

		return domain.CinemaHall{}, err
	}

	if session.CinemaHall == nil {
		return domain.CinemaHall{}, fmt.Errorf("movie session %d was loaded without its cinema hall", sessionId)
	}

	r.halls[sessionId] = *session.CinemaHall

	return *session.CinemaHall, nil
}

func (r *hallResolver) validate(ctx context.Context, ticket *domain.Ticket) error {
	hall, err := r.hallOf(ctx, ticket.MovieSessionID)
	if err != nil {
		return err
	}

	return ValidateSeat(hall, ticket.Row, ticket.Seat)
}
