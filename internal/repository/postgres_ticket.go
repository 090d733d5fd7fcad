package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

// Create inserts the ticket. The unique_row_seat_and_movie_session
// constraint decides races for the same seat; the loser gets
// domain.ErrSeatAlreadyBooked.
func (p *PostgresTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	return translateError(insertTicket(ctx, p.db, ticket))
}

func insertTicket(ctx context.Context, db querier, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (movie_session_id, order_id, seat_row, seat)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return db.QueryRow(
		ctx,
		query,
		ticket.MovieSessionID,
		ticket.OrderID,
		ticket.Row,
		ticket.Seat).Scan(&ticket.ID)
}

func (p *PostgresTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		UPDATE tickets
		SET movie_session_id = $1, order_id = $2, seat_row = $3, seat = $4
		WHERE id = $5
	`

	tag, err := p.db.Exec(
		ctx,
		query,
		ticket.MovieSessionID,
		ticket.OrderID,
		ticket.Row,
		ticket.Seat,
		ticket.ID)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresTicketRepository) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	query := `
		SELECT id, movie_session_id, order_id, seat_row, seat
		FROM tickets
		WHERE id = $1
	`

	var ticket domain.Ticket

	err := p.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.MovieSessionID,
		&ticket.OrderID,
		&ticket.Row,
		&ticket.Seat,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &ticket, nil
}

func (p *PostgresTicketRepository) GetByMovieSessionId(ctx context.Context, sessionId int) ([]domain.Ticket, error) {
	query := `
		SELECT id, movie_session_id, order_id, seat_row, seat
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY seat_row, seat
	`

	rows, err := p.db.Query(ctx, query, sessionId)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanTicket)
}

func (p *PostgresTicketRepository) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, p.db, `DELETE FROM tickets WHERE id = $1`, id)
}

func scanTicket(row pgx.CollectableRow) (domain.Ticket, error) {
	var ticket domain.Ticket

	err := row.Scan(
		&ticket.ID,
		&ticket.MovieSessionID,
		&ticket.OrderID,
		&ticket.Row,
		&ticket.Seat,
	)

	return ticket, err
}
