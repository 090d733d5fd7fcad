package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		db: db,
	}
}

func (p *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO orders (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, order.UserID).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		for i := range order.Tickets {
			order.Tickets[i].OrderID = order.ID

			err = insertTicket(ctx, tx, &order.Tickets[i])
			if err != nil {
				return err
			}
		}

		return nil
	})

	return translateError(err)
}

func (p *PostgresOrderRepository) GetById(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT id, user_id, created_at FROM orders WHERE id = $1`

	var order domain.Order

	err := p.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	query = `
		SELECT id, movie_session_id, order_id, seat_row, seat
		FROM tickets
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}

	order.Tickets, err = pgx.CollectRows(rows, scanTicket)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (p *PostgresOrderRepository) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Order, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	totalRecords := 0

	for rows.Next() {
		var order domain.Order

		err := rows.Scan(&totalRecords, &order.ID, &order.UserID, &order.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		order.Tickets = make([]domain.Ticket, 0)
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	err = p.attachTickets(ctx, orders)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return orders, metadata, nil
}

func (p *PostgresOrderRepository) attachTickets(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, len(orders))
	positions := make(map[int]int, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		positions[order.ID] = i
	}

	query := `
		SELECT id, movie_session_id, order_id, seat_row, seat
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}

	tickets, err := pgx.CollectRows(rows, scanTicket)
	if err != nil {
		return err
	}

	for _, ticket := range tickets {
		i := positions[ticket.OrderID]
		orders[i].Tickets = append(orders[i].Tickets, ticket)
	}

	return nil
}

// Delete removes the order and its tickets.
func (p *PostgresOrderRepository) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, p.db, `DELETE FROM orders WHERE id = $1`, id)
}
