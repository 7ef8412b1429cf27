package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/dto"
	"github.com/SscSPs/forex_widget/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// rateHandler handles rate card and better-rate requests.
type rateHandler struct {
	rateService       portssvc.RateSvc
	betterRateService portssvc.BetterRateSvc
}

func newRateHandler(rs portssvc.RateSvc, brs portssvc.BetterRateSvc) *rateHandler {
	return &rateHandler{rateService: rs, betterRateService: brs}
}

// registerRateRoutes registers the rate card and better-rate routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvc, betterRateService portssvc.BetterRateSvc, lim *limiter.Limiter) {
	h := newRateHandler(rateService, betterRateService)

	rg.GET("/rates", h.listRates)
	rg.POST("/better-rate", middleware.RateLimit(lim), h.getBetterRate)
}

// listRates godoc
// @Summary Get the rate card for a city
// @Description Fetches the provider rate card and returns normalized buy rates ordered by popularity
// @Tags rates
// @Produce  json
// @Param   city_code query string false "City code (defaults to DEL)"
// @Success 200 {object} dto.RatesResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch exchange rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, logger, bindError(err), "", "Failed to fetch exchange rates")
		return
	}
	logger = logger.With(slog.String("city_code", params.CityCode))

	card, err := h.rateService.GetRateCard(c.Request.Context(), params.CityCode)
	if err != nil {
		respondError(c, logger, err, "Rates not found", "Failed to fetch exchange rates")
		return
	}

	logger.Info("Rate card served", slog.Int("rates", len(card.Rates)))
	c.JSON(http.StatusOK, dto.ToRatesResponse(card))
}

// getBetterRate godoc
// @Summary Get a better-rate discount quote
// @Description Requests a discount quote from the provider for a currency, product and amount
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   request body dto.BetterRateRequest true "Quote request"
// @Success 200 {object} dto.BetterRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Currency rate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch better rate"
// @Router /better-rate [post]
func (h *rateHandler) getBetterRate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.BetterRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "", "Failed to fetch better rate")
		return
	}

	product, err := domain.ParseProductCode(req.Product)
	if err != nil {
		respondError(c, logger, apperrors.NewFieldError("product", "product must be one of: CN, PC"), "", "Failed to fetch better rate")
		return
	}

	logger = logger.With(slog.String("currency", req.CurrencyCode), slog.String("product", string(product)), slog.String("city_code", req.CityCode))
	quote, err := h.betterRateService.GetBetterRate(c.Request.Context(), domain.BetterRateQuery{
		CityCode:     req.CityCode,
		CurrencyCode: req.CurrencyCode,
		Product:      product,
		Amount:       req.Amount.Decimal,
	})
	if err != nil {
		respondError(c, logger, err, "Currency rate not found", "Failed to fetch better rate")
		return
	}

	logger.Info("Better rate served", slog.Bool("discounted", quote.HasDiscount()))
	c.JSON(http.StatusOK, dto.ToBetterRateResponse(quote))
}
