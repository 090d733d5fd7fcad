package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, first_name, last_name, is_staff, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_joined
	`

	err := p.db.QueryRow(ctx,
		query,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.IsStaff,
		user.IsActive).Scan(&user.ID, &user.DateJoined)

	return translateError(err)
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, username, email, first_name, last_name, is_staff, is_active, date_joined
		FROM users
		WHERE id = $1
	`

	var user domain.User

	err := p.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.IsStaff,
		&user.IsActive,
		&user.DateJoined,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}
