package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/app"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
)

type TestApp struct {
	App   *app.Application
	DB    *pgxpool.Pool
	Repos app.Repositories
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	repos := app.NewPostgresRepositories(db)

	return &TestApp{
		App:   app.NewApp(cfg, logger, appvalidator.NewValidator(), repos),
		DB:    db,
		Repos: repos,
	}, nil
}
