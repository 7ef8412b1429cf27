package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/core/services"
	"github.com/SscSPs/forex_widget/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LeadServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLeadRepository
	service  portssvc.LeadSvcFacade
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLeadRepository)
	suite.service = services.NewLeadService(suite.mockRepo)
}

func amount(v int64) *int64 { return &v }

func (suite *LeadServiceTestSuite) TestCreateLead_Success() {
	ctx := context.Background()
	req := dto.CreateLeadRequest{City: "DEL", Product: "card", Currency: "USD", Amount: amount(500)}
	stored := &domain.Lead{ID: 1, City: "DEL", Product: domain.LeadProductCard, Currency: "USD", Amount: 500, CreatedAt: time.Now().UTC()}

	suite.mockRepo.On("CreateLead", ctx, domain.NewLead{City: "DEL", Product: domain.LeadProductCard, Currency: "USD", Amount: 500}).Return(stored, nil).Once()

	lead, err := suite.service.CreateLead(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), lead.ID)
	suite.Nil(lead.ConvertedAmount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestCreateLead_ZeroAmountAllowed() {
	ctx := context.Background()
	suite.mockRepo.On("CreateLead", ctx, mock.AnythingOfType("domain.NewLead")).Return(&domain.Lead{ID: 2}, nil).Once()

	_, err := suite.service.CreateLead(ctx, dto.CreateLeadRequest{City: "MUM", Product: "note", Currency: "EUR", Amount: amount(0)})

	suite.Require().NoError(err)
}

func (suite *LeadServiceTestSuite) TestCreateLead_ValidationNamesFirstField() {
	tests := []struct {
		name  string
		req   dto.CreateLeadRequest
		field string
	}{
		{name: "negative amount", req: dto.CreateLeadRequest{City: "DEL", Product: "card", Currency: "USD", Amount: amount(-1)}, field: "amount"},
		{name: "missing amount", req: dto.CreateLeadRequest{City: "DEL", Product: "card", Currency: "USD"}, field: "amount"},
		{name: "empty city", req: dto.CreateLeadRequest{Product: "card", Currency: "USD", Amount: amount(1)}, field: "city"},
		{name: "bad product", req: dto.CreateLeadRequest{City: "DEL", Product: "cash", Currency: "USD", Amount: amount(1)}, field: "product"},
		{name: "empty currency", req: dto.CreateLeadRequest{City: "DEL", Product: "note", Amount: amount(1)}, field: "currency"},
		{name: "first of many", req: dto.CreateLeadRequest{Product: "cash", Amount: amount(-5)}, field: "city"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			lead, err := suite.service.CreateLead(context.Background(), tt.req)

			suite.Nil(lead)
			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrValidation)
			var fe *apperrors.FieldError
			suite.Require().True(errors.As(err, &fe))
			suite.Equal(tt.field, fe.Field)
			suite.NotEmpty(fe.Message)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateLead", mock.Anything, mock.Anything)
}

func (suite *LeadServiceTestSuite) TestCreateLead_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("CreateLead", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	lead, err := suite.service.CreateLead(ctx, dto.CreateLeadRequest{City: "DEL", Product: "card", Currency: "USD", Amount: amount(5)})

	suite.Nil(lead)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
