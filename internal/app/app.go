package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-booking/internal/booking"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/repository"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/metinatakli/cinema-booking/internal/vcs"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-booking-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate

	genreRepo   domain.GenreRepository
	actorRepo   domain.ActorRepository
	movieRepo   domain.MovieRepository
	hallRepo    domain.CinemaHallRepository
	sessionRepo domain.MovieSessionRepository
	ticketRepo  domain.TicketRepository
	orderRepo   domain.OrderRepository
	userRepo    domain.UserRepository

	booking *booking.Service
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type Repositories struct {
	Genres        domain.GenreRepository
	Actors        domain.ActorRepository
	Movies        domain.MovieRepository
	CinemaHalls   domain.CinemaHallRepository
	MovieSessions domain.MovieSessionRepository
	Tickets       domain.TicketRepository
	Orders        domain.OrderRepository
	Users         domain.UserRepository
}

func NewApp(cfg Config, logger *slog.Logger, validator *validator.Validate, repos Repositories) *Application {
	return &Application{
		config:      cfg,
		logger:      logger,
		validator:   validator,
		genreRepo:   repos.Genres,
		actorRepo:   repos.Actors,
		movieRepo:   repos.Movies,
		hallRepo:    repos.CinemaHalls,
		sessionRepo: repos.MovieSessions,
		ticketRepo:  repos.Tickets,
		orderRepo:   repos.Orders,
		userRepo:    repos.Users,
		booking:     booking.NewService(logger, repos.MovieSessions, repos.Tickets, repos.Orders),
	}
}

func NewPostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Genres:        repository.NewPostgresGenreRepository(db),
		Actors:        repository.NewPostgresActorRepository(db),
		Movies:        repository.NewPostgresMovieRepository(db),
		CinemaHalls:   repository.NewPostgresCinemaHallRepository(db),
		MovieSessions: repository.NewPostgresMovieSessionRepository(db),
		Tickets:       repository.NewPostgresTicketRepository(db),
		Orders:        repository.NewPostgresOrderRepository(db),
		Users:         repository.NewPostgresUserRepository(db),
	}
}

func Run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load .env file", "error", err)
	}

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("APP_ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(newTeeHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return err
	}
	defer db.Close()

	app := NewApp(cfg, logger, appvalidator.NewValidator(), NewPostgresRepositories(db))

	return app.run()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(app.logRequest)
	r.Use(app.recoverPanic)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", app.GetGenres)
		r.Post("/", app.CreateGenre)
	})

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", app.GetActors)
		r.Post("/", app.CreateActor)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Post("/", app.CreateMovie)
		r.Get("/{id}", app.GetMovie)
		r.Delete("/{id}", app.DeleteMovie)
	})

	r.Route("/cinema-halls", func(r chi.Router) {
		r.Get("/", app.GetCinemaHalls)
		r.Post("/", app.CreateCinemaHall)
		r.Get("/{id}", app.GetCinemaHall)
		r.Delete("/{id}", app.DeleteCinemaHall)
	})

	r.Route("/movie-sessions", func(r chi.Router) {
		r.Post("/", app.CreateMovieSession)
		r.Get("/{id}", app.GetMovieSession)
		r.Delete("/{id}", app.DeleteMovieSession)
		r.Get("/{id}/tickets", app.GetMovieSessionTickets)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", app.CreateUser)
		r.Get("/{id}", app.GetUser)
		r.Get("/{id}/orders", app.GetOrdersOfUser)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", app.CreateOrder)
		r.Get("/{id}", app.GetOrder)
		r.Delete("/{id}", app.DeleteOrder)
	})

	r.Route("/tickets", func(r chi.Router) {
		r.Post("/", app.CreateTicket)
		r.Get("/{id}", app.GetTicket)
		r.Put("/{id}", app.UpdateTicket)
		r.Delete("/{id}", app.DeleteTicket)
	})

	return r
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}
