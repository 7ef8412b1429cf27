package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_widget/internal/core/ports/repositories"
	"github.com/SscSPs/forex_widget/internal/core/services"
	"github.com/SscSPs/forex_widget/internal/platform/config"
	"github.com/SscSPs/forex_widget/internal/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CurrencyPickerServiceTestSuite struct {
	suite.Suite
	catalog *refdata.Catalog
	rates   []domain.Rate
}

func (suite *CurrencyPickerServiceTestSuite) SetupTest() {
	catalog, err := refdata.Load()
	suite.Require().NoError(err)
	suite.catalog = catalog
	suite.rates = []domain.Rate{
		{Currency: "USD", Name: "US Dollar", Image: "usd.png"},
		{Currency: "EUR", Name: "Euro"},
		{Currency: "TRY", Name: "Turkish Lira"},
		{Currency: "AUD", Name: "Australian Dollar"},
		{Currency: "THB", Name: "Thai Baht"},
		{Currency: "ZZZ", Name: "Unknown"},
	}
}

func codes(items []domain.PickerCurrency) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Code
	}
	return out
}

func (suite *CurrencyPickerServiceTestSuite) enriched() []domain.PickerCurrency {
	return services.EnrichCurrencies(suite.catalog.Currencies(), suite.rates)
}

func (suite *CurrencyPickerServiceTestSuite) TestEnrich_KeepsLiveCurrenciesInDeclaredOrder() {
	items := suite.enriched()

	suite.Equal([]string{"USD", "THB", "EUR", "AUD", "TRY"}, codes(items))
	suite.Equal("usd.png", items[0].Image)
	suite.NotEmpty(items[0].SearchTerms)
}

func (suite *CurrencyPickerServiceTestSuite) TestBuildPicker_NoQueryGroups() {
	picker := services.BuildPicker(suite.enriched(), "")

	suite.False(picker.Searching)
	suite.Equal([]string{"USD", "THB", "EUR"}, codes(picker.Popular))
	suite.Equal([]string{"AUD", "TRY"}, codes(picker.Other))
	suite.Empty(picker.Results)
}

func (suite *CurrencyPickerServiceTestSuite) TestBuildPicker_BlankQueryEqualsNoQuery() {
	suite.Equal(services.BuildPicker(suite.enriched(), ""), services.BuildPicker(suite.enriched(), "   "))
}

func (suite *CurrencyPickerServiceTestSuite) TestBuildPicker_ParisMatchesEuroOnly() {
	picker := services.BuildPicker(suite.enriched(), "Paris")

	suite.True(picker.Searching)
	suite.Equal([]string{"EUR"}, codes(picker.Results))
	suite.NotContains(codes(picker.Results), "USD")
}

func (suite *CurrencyPickerServiceTestSuite) TestBuildPicker_AllTokensMustMatch() {
	suite.Equal([]string{"USD", "AUD"}, codes(services.BuildPicker(suite.enriched(), "dollar").Results))
	suite.Empty(services.BuildPicker(suite.enriched(), "dollar paris").Results)
}

func (suite *CurrencyPickerServiceTestSuite) TestGetPicker_UsesRateCard() {
	ctx := context.Background()
	rates := new(MockRateService)
	rates.On("GetRateCard", ctx, "MUM").Return(&domain.RateCard{CityCode: "MUM", Rates: suite.rates}, nil).Once()

	picker, err := services.NewCurrencyPickerService(rates, suite.catalog).GetPicker(ctx, "MUM", "baht")

	suite.Require().NoError(err)
	suite.Equal([]string{"THB"}, codes(picker.Results))
	rates.AssertExpectations(suite.T())
}

func (suite *CurrencyPickerServiceTestSuite) TestGetPicker_UpstreamError() {
	ctx := context.Background()
	rates := new(MockRateService)
	rates.On("GetRateCard", ctx, "DEL").Return(nil, apperrors.NewUpstreamError("down")).Once()

	picker, err := services.NewCurrencyPickerService(rates, suite.catalog).GetPicker(ctx, "DEL", "")

	suite.Nil(picker)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func TestCurrencyPickerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyPickerServiceTestSuite))
}

func TestNewServiceContainer(t *testing.T) {
	catalog, err := refdata.Load()
	require.NoError(t, err)

	container := services.NewServiceContainer(
		&config.Config{DefaultCityCode: "DEL"},
		portsrepo.RepositoryProvider{LeadRepo: new(MockLeadRepository)},
		new(MockForexProvider),
		catalog,
	)

	assert.NotNil(t, container.City)
	assert.NotNil(t, container.Rate)
	assert.NotNil(t, container.BetterRate)
	assert.NotNil(t, container.Lead)
	assert.NotNil(t, container.CurrencyPicker)
}
