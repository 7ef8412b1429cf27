package services_test

import (
	"context"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/SscSPs/forex_widget/internal/core/ports/providers"
	"github.com/stretchr/testify/mock"
)

// --- Mock ForexProvider ---
type MockForexProvider struct {
	mock.Mock
}

func (m *MockForexProvider) FetchRateCard(ctx context.Context, providerCityCode string) ([]providers.RateRecord, error) {
	args := m.Called(ctx, providerCityCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]providers.RateRecord), args.Error(1)
}

func (m *MockForexProvider) SaveBetterRate(ctx context.Context, req providers.BetterRateRequest) (*providers.BetterRateReply, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.BetterRateReply), args.Error(1)
}

// --- Mock LeadRepository ---
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) CreateLead(ctx context.Context, lead domain.NewLead) (*domain.Lead, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

// --- Mock RateSvc ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRateCard(ctx context.Context, cityCode string) (*domain.RateCard, error) {
	args := m.Called(ctx, cityCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateCard), args.Error(1)
}

func rec(code, name string, bpc, bcn providers.FlexValue) providers.RateRecord {
	return providers.RateRecord{CurrencyCode: code, CurrencyDescription: name, Bpc: bpc, Bcn: bcn}
}

func str(s string) providers.FlexValue { return providers.NewFlexString(s) }
