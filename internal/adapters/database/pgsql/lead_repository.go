package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_widget/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// rowQuerier is the subset of *pgxpool.Pool used by the lead repository.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgxLeadRepository struct {
	pool rowQuerier
}

// NewPgxLeadRepository creates a new repository for lead data.
// Pass a *pgxpool.Pool in production.
func NewPgxLeadRepository(pool rowQuerier) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{pool: pool}
}

// Ensure PgxLeadRepository implements the lead repository port
var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

// CreateLead inserts a lead; id and created_at come from the database.
func (r *PgxLeadRepository) CreateLead(ctx context.Context, lead domain.NewLead) (*domain.Lead, error) {
	query := `
		INSERT INTO leads (city, product, currency, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	created := domain.Lead{
		City:     lead.City,
		Product:  lead.Product,
		Currency: lead.Currency,
		Amount:   lead.Amount,
	}
	err := r.pool.QueryRow(ctx, query,
		lead.City,
		string(lead.Product),
		lead.Currency,
		lead.Amount,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lead", fmt.Errorf("insert into leads: %w", err))
	}

	return &created, nil
}
