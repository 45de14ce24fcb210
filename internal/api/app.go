package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinetichq/kinetic/internal/assessment"
	"github.com/kinetichq/kinetic/internal/config"
	"github.com/kinetichq/kinetic/internal/domain"
	"github.com/kinetichq/kinetic/internal/events"
	"github.com/kinetichq/kinetic/internal/exercise"
	"github.com/kinetichq/kinetic/internal/storage/postgres"
	"github.com/kinetichq/kinetic/internal/storage/sqlite"
)

// App holds all application dependencies
type App struct {
	Config     *config.Config
	Exercises  *exercise.Registry
	Assessment *assessment.Service
	Events     *events.Connection // nil when no broker is configured

	sqliteDB *sqlite.DB
	pgPool   *pgxpool.Pool
}

// NewApp creates a new application instance with all dependencies wired.
// KINETIC_DATABASE_URL selects Postgres; otherwise SQLite is opened at
// KINETIC_SQLITE_PATH and migrated in place.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	var store assessment.Store
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		app.pgPool = pool
		store = postgres.NewAssessmentStore(pool)
	} else {
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		app.sqliteDB = db
		store = sqlite.NewAssessmentStore(db)
	}

	loader := exercise.NewLoader(cfg.CatalogPath)
	app.Exercises = exercise.NewRegistry(loader)
	if err := app.Exercises.Load(); err != nil {
		app.closeDB()
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}

	// The broker is optional: without it level-ups are computed and
	// returned but never announced.
	var publisher assessment.Publisher
	if cfg.RabbitMQURL != "" {
		conn, err := events.NewConnection(cfg.RabbitMQURL)
		if err != nil {
			app.closeDB()
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		app.Events = conn
		publisher = events.NewPublisher(conn, slog.Default())
	}

	app.Assessment = assessment.NewService(store, domain.DefaultThresholds(), publisher)

	return app, nil
}

// Ping checks database connectivity
func (a *App) Ping(ctx context.Context) error {
	if a.pgPool != nil {
		return a.pgPool.Ping(ctx)
	}
	if a.sqliteDB != nil {
		return a.sqliteDB.PingContext(ctx)
	}
	return nil
}

func (a *App) closeDB() {
	if a.pgPool != nil {
		a.pgPool.Close()
	}
	if a.sqliteDB != nil {
		a.sqliteDB.Close()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	if a.Events != nil {
		if err := a.Events.Close(); err != nil {
			slog.Warn("close rabbitmq connection", "error", err)
		}
	}
	a.closeDB()
	return nil
}
