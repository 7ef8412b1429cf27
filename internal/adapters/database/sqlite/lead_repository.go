package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_widget/internal/core/ports/repositories"
)

type LeadRepo struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite file at dsn and ensures the schema exists.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the leads table when missing.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS leads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    city TEXT NOT NULL,
    product TEXT NOT NULL,
    currency TEXT NOT NULL,
    amount INTEGER NOT NULL,
    converted_amount TEXT,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);
`)
	if err != nil {
		return fmt.Errorf("failed to migrate sqlite: %w", err)
	}
	return nil
}

func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db, now: time.Now}
}

// Ensure LeadRepo implements the lead repository port
var _ portsrepo.LeadRepositoryFacade = (*LeadRepo)(nil)

func (r *LeadRepo) CreateLead(ctx context.Context, lead domain.NewLead) (*domain.Lead, error) {
	createdAt := r.now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO leads(city, product, currency, amount, created_at) VALUES(?,?,?,?,?)`,
		lead.City, string(lead.Product), lead.Currency, lead.Amount, createdAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lead", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read lead id", err)
	}
	return &domain.Lead{
		ID:        id,
		City:      lead.City,
		Product:   lead.Product,
		Currency:  lead.Currency,
		Amount:    lead.Amount,
		CreatedAt: createdAt,
	}, nil
}
