package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/doreish/mission-control/internal/config"
	"github.com/doreish/mission-control/pkg/database"
	"github.com/doreish/mission-control/pkg/logging"
)

// Runtime holds the shared infrastructure: logger and database pool.
type Runtime struct {
	Logger *slog.Logger
	DB     *sql.DB
}

// NewRuntime initializes the logger, opens the database pool, and applies
// pending schema migrations.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	return &Runtime{
		Logger: logger,
		DB:     db,
	}, nil
}

// Close releases runtime resources.
func (r *Runtime) Close() {
	r.DB.Close()
}
