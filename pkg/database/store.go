package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/forex_widget/internal/adapters/database/pgsql"
	"github.com/SscSPs/forex_widget/internal/adapters/database/sqlite"
	"github.com/SscSPs/forex_widget/internal/adapters/memory"
	portsrepo "github.com/SscSPs/forex_widget/internal/core/ports/repositories"
)

// Backend names the lead storage chosen at startup.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// DetectBackend picks the storage backend from a DATABASE_URL value.
// The second value is the DSN to hand to the driver.
func DetectBackend(databaseURL string) (Backend, string, error) {
	u := strings.TrimSpace(databaseURL)
	switch {
	case u == "":
		return BackendMemory, "", nil
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return BackendPostgres, u, nil
	case strings.HasPrefix(u, "sqlite://"):
		path := strings.TrimPrefix(u, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite database URL has no path")
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(u, "file:"):
		return BackendSQLite, u, nil
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme in %q", redact(u))
	}
}

func redact(u string) string {
	if i := strings.Index(u, "://"); i >= 0 {
		return u[:i+3] + "..."
	}
	return "..."
}

// Store is the lead repository plus the function that releases its resources.
type Store struct {
	Backend Backend
	Leads   portsrepo.LeadRepositoryFacade
	Close   func()
	// Ping checks connectivity; it is nil for the memory backend.
	Ping func(ctx context.Context) error
}

// OpenStore connects the lead storage selected by databaseURL.
// PostgreSQL runs migrations before the pool is opened.
func OpenStore(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	backend, dsn, err := DetectBackend(databaseURL)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendPostgres:
		logger.Info("Running database migrations...")
		if err := RunMigrations(dsn, logger); err != nil {
			return nil, err
		}
		pool, err := NewPgxPool(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Store{Backend: backend, Leads: pgsql.NewPgxLeadRepository(pool), Close: func() { ClosePgxPool(pool) }, Ping: pool.Ping}, nil
	case BackendSQLite:
		db, err := sqlite.Open(dsn)
		if err != nil {
			return nil, err
		}
		logger.Info("Using SQLite lead storage", slog.String("path", dsn))
		return &Store{Backend: backend, Leads: sqlite.NewLeadRepo(db), Close: func() { _ = db.Close() }, Ping: db.PingContext}, nil
	default:
		logger.Warn("DATABASE_URL not set, leads are kept in memory only")
		return &Store{Backend: BackendMemory, Leads: memory.NewLeadRepository(), Close: func() {}}, nil
	}
}
