package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	seatUniqueConstraint     = "unique_row_seat_and_movie_session"
	usernameUniqueConstraint = "users_username_key"
)

// foreignKeyEntities names the parent record of every foreign key declared
// in migrations/000001_create_cinema_tables.up.sql.
var foreignKeyEntities = map[string]string{
	"movie_actors_actor_id_fkey":         domain.EntityActor,
	"movie_actors_movie_id_fkey":         domain.EntityMovie,
	"movie_genres_genre_id_fkey":         domain.EntityGenre,
	"movie_genres_movie_id_fkey":         domain.EntityMovie,
	"movie_sessions_cinema_hall_id_fkey": domain.EntityCinemaHall,
	"movie_sessions_movie_id_fkey":       domain.EntityMovie,
	"orders_user_id_fkey":                domain.EntityUser,
	"tickets_movie_session_id_fkey":      domain.EntityMovieSession,
	"tickets_order_id_fkey":              domain.EntityOrder,
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// translateError maps driver errors onto domain errors. Errors it does not
// recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case seatUniqueConstraint:
			return domain.ErrSeatAlreadyBooked
		case usernameUniqueConstraint:
			return domain.ErrUserAlreadyExists
		}
	case pgerrcode.ForeignKeyViolation:
		entity, ok := foreignKeyEntities[pgErr.ConstraintName]
		if !ok {
			entity = "referenced record"
		}

		return &domain.ReferenceError{Entity: entity}
	}

	return err
}

func deleteById(ctx context.Context, db querier, query string, id int) error {
	tag, err := db.Exec(ctx, query, id)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
