package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/dto"
	"github.com/SscSPs/forex_widget/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cityHandler handles HTTP requests related to cities.
type cityHandler struct {
	cityService portssvc.CitySvc
}

func newCityHandler(cs portssvc.CitySvc) *cityHandler {
	return &cityHandler{cityService: cs}
}

// registerCityRoutes registers routes related to cities.
func registerCityRoutes(rg *gin.RouterGroup, cityService portssvc.CitySvc) {
	h := newCityHandler(cityService)
	rg.GET("/cities", h.listCities)
}

// listCities godoc
// @Summary List cities
// @Description Returns every city, top cities first then alphabetical. Never fails: a short fallback list is served on error.
// @Tags cities
// @Produce  json
// @Success 200 {array} dto.CityResponse
// @Router /cities [get]
func (h *cityHandler) listCities(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	cities, err := h.cityService.ListCities(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list cities, serving fallback", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.ToFallbackCityResponse(domain.FallbackCities()))
		return
	}

	c.JSON(http.StatusOK, dto.ToListCityResponse(cities))
}
