package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresCinemaHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaHallRepository(db *pgxpool.Pool) *PostgresCinemaHallRepository {
	return &PostgresCinemaHallRepository{
		db: db,
	}
}

func (p *PostgresCinemaHallRepository) Create(ctx context.Context, hall *domain.CinemaHall) error {
	query := `
		INSERT INTO cinema_halls (name, seat_rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)

	return translateError(err)
}

func (p *PostgresCinemaHallRepository) GetAll(ctx context.Context) ([]domain.CinemaHall, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name, seat_rows, seats_in_row FROM cinema_halls ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.CinemaHall, 0)

	for rows.Next() {
		var hall domain.CinemaHall

		err := rows.Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresCinemaHallRepository) GetById(ctx context.Context, id int) (*domain.CinemaHall, error) {
	query := `SELECT id, name, seat_rows, seats_in_row FROM cinema_halls WHERE id = $1`

	var hall domain.CinemaHall

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		return nil, translateError(err)
	}

	return &hall, nil
}

// Delete removes the hall. Its movie sessions and their tickets are removed
// by the ON DELETE CASCADE foreign keys.
func (p *PostgresCinemaHallRepository) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, p.db, `DELETE FROM cinema_halls WHERE id = $1`, id)
}
