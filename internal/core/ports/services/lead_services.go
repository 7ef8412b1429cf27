package services

import (
	"context"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/SscSPs/forex_widget/internal/dto"
)

// LeadWriterSvc defines write operations for lead data
type LeadWriterSvc interface {
	// CreateLead validates and persists a new lead.
	CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*domain.Lead, error)
}

// LeadSvcFacade combines all lead-related service interfaces
type LeadSvcFacade interface {
	LeadWriterSvc
}
