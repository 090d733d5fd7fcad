package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresMovieSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieSessionRepository(db *pgxpool.Pool) *PostgresMovieSessionRepository {
	return &PostgresMovieSessionRepository{
		db: db,
	}
}

func (p *PostgresMovieSessionRepository) Create(ctx context.Context, session *domain.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, session.ShowTime, session.MovieID, session.CinemaHallID).Scan(&session.ID)

	return translateError(err)
}

func (p *PostgresMovieSessionRepository) GetById(ctx context.Context, id int) (*domain.MovieSession, error) {
	query := `
		SELECT
			ms.id,
			ms.show_time,
			ms.movie_id,
			h.id,
			h.name,
			h.seat_rows,
			h.seats_in_row
		FROM movie_sessions ms
		JOIN cinema_halls h ON ms.cinema_hall_id = h.id
		WHERE ms.id = $1
	`

	var session domain.MovieSession
	var hall domain.CinemaHall

	err := p.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.ShowTime,
		&session.MovieID,
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		return nil, translateError(err)
	}

	session.CinemaHallID = hall.ID
	session.CinemaHall = &hall

	return &session, nil
}

// Delete removes the session together with every ticket issued for it.
func (p *PostgresMovieSessionRepository) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, p.db, `DELETE FROM movie_sessions WHERE id = $1`, id)
}
