package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/dto"
	"github.com/SscSPs/forex_widget/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler serves the currency picker.
type currencyHandler struct {
	pickerService portssvc.CurrencyPickerSvc
}

func registerCurrencyRoutes(rg *gin.RouterGroup, pickerService portssvc.CurrencyPickerSvc) {
	h := &currencyHandler{pickerService: pickerService}
	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies godoc
// @Summary Currency picker
// @Description Currencies available in a city: grouped into popular and other, or filtered by a search query
// @Tags currencies
// @Produce  json
// @Param   city_code query string false "City code (defaults to DEL)"
// @Param   q query string false "Search text; every word must match"
// @Success 200 {object} dto.CurrencyPickerResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.CurrencyPickerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, logger, bindError(err), "", "Failed to fetch currencies")
		return
	}

	picker, err := h.pickerService.GetPicker(c.Request.Context(), params.CityCode, params.Query)
	if err != nil {
		respondError(c, logger, err, "Currencies not found", "Failed to fetch currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyPickerResponse(picker))
}
