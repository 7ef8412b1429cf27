package repositories

import (
	"context"

	"github.com/SscSPs/forex_widget/internal/core/domain"
)

// LeadWriter defines write operations for lead data.
type LeadWriter interface {
	// CreateLead appends a lead, assigning its id and creation time.
	CreateLead(ctx context.Context, lead domain.NewLead) (*domain.Lead, error)
}

// LeadRepositoryFacade combines all lead-related repository interfaces.
// Leads are append-only, so writing is the whole surface.
type LeadRepositoryFacade interface {
	LeadWriter
}
