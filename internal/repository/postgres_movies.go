package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

// Create inserts the movie and links it to the actors and genres referenced
// by ID. Actors and Genres are reloaded from storage afterwards.
func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO movies (title, description) VALUES ($1, $2) RETURNING id`

		err := tx.QueryRow(ctx, query, movie.Title, movie.Description).Scan(&movie.ID)
		if err != nil {
			return err
		}

		actorRows := linkRows(movie.ID, movie.Actors, func(a domain.Actor) int { return a.ID })

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"movie_actors"},
			[]string{"movie_id", "actor_id"},
			pgx.CopyFromRows(actorRows),
		)
		if err != nil {
			return err
		}

		genreRows := linkRows(movie.ID, movie.Genres, func(g domain.Genre) int { return g.ID })

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"movie_genres"},
			[]string{"movie_id", "genre_id"},
			pgx.CopyFromRows(genreRows),
		)
		if err != nil {
			return err
		}

		return loadCast(ctx, tx, movie)
	})

	return translateError(err)
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, description FROM movies WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.Description)
	if err != nil {
		return nil, translateError(err)
	}

	err = loadCast(ctx, p.db, &movie)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) GetAll(
	ctx context.Context,
	filters domain.MovieFilters) ([]domain.Movie, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, title, description
		FROM movies
		WHERE ($1 = '' OR title ILIKE ('%' || $1 || '%') ESCAPE '\')
		ORDER BY title, id
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, escapeLike(filters.Title), filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := make([]domain.Movie, 0)

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
		)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

// linkRows builds the join table rows for a movie. Actors and genres form a
// set, so repeated IDs are stored once.
func linkRows[T any](movieId int, items []T, id func(T) int) [][]any {
	seen := make(map[int]struct{}, len(items))
	rows := make([][]any, 0, len(items))

	for _, item := range items {
		itemId := id(item)
		if _, ok := seen[itemId]; ok {
			continue
		}
		seen[itemId] = struct{}{}

		rows = append(rows, []any{movieId, itemId})
	}

	return rows
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, p.db, `DELETE FROM movies WHERE id = $1`, id)
}

func loadCast(ctx context.Context, db querier, movie *domain.Movie) error {
	query := `
		SELECT a.id, a.first_name, a.last_name
		FROM actors a
		JOIN movie_actors ma ON ma.actor_id = a.id
		WHERE ma.movie_id = $1
		ORDER BY a.last_name, a.first_name
	`

	rows, err := db.Query(ctx, query, movie.ID)
	if err != nil {
		return err
	}

	actors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Actor, error) {
		var actor domain.Actor
		err := row.Scan(&actor.ID, &actor.FirstName, &actor.LastName)
		return actor, err
	})
	if err != nil {
		return err
	}

	query = `
		SELECT g.id, g.name
		FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1
		ORDER BY g.name
	`

	rows, err = db.Query(ctx, query, movie.ID)
	if err != nil {
		return err
	}

	genres, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Genre, error) {
		var genre domain.Genre
		err := row.Scan(&genre.ID, &genre.Name)
		return genre, err
	})
	if err != nil {
		return err
	}

	movie.Actors = actors
	movie.Genres = genres

	return nil
}
