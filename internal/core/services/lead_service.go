package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_widget/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/dto"
	"github.com/go-playground/validator/v10"
)

type leadService struct {
	BaseService
	leadRepo portsrepo.LeadRepositoryFacade
	validate *validator.Validate
}

// NewLeadService creates the lead recorder on top of the chosen lead storage.
func NewLeadService(leadRepo portsrepo.LeadRepositoryFacade) portssvc.LeadSvcFacade {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &leadService{leadRepo: leadRepo, validate: v}
}

func (s *leadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*domain.Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		fieldErr := toFieldError(err)
		s.LogDebug(ctx, "Lead validation failed", slog.String("field", fieldErr.Field), slog.String("reason", fieldErr.Message))
		return nil, fieldErr
	}

	lead, err := s.leadRepo.CreateLead(ctx, domain.NewLead{
		City:     req.City,
		Product:  domain.LeadProduct(req.Product),
		Currency: req.Currency,
		Amount:   *req.Amount,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to store lead")
		return nil, fmt.Errorf("failed to create lead in service: %w", err)
	}

	s.LogInfo(ctx, "Lead created", slog.Int64("lead_id", lead.ID), slog.String("city", lead.City), slog.String("currency", lead.Currency))
	return lead, nil
}

// toFieldError converts the first validator failure into a FieldError.
func toFieldError(err error) *apperrors.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewFieldError("", err.Error())
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.NewFieldError(field, fmt.Sprintf("%s is required", field))
	case "oneof":
		return apperrors.NewFieldError(field, fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
	case "min":
		return apperrors.NewFieldError(field, fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param()))
	default:
		return apperrors.NewFieldError(field, fmt.Sprintf("%s is invalid", field))
	}
}
