package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/dto"
	"github.com/SscSPs/forex_widget/internal/middleware"
	"github.com/SscSPs/forex_widget/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// leadHandler handles HTTP requests related to leads.
type leadHandler struct {
	leadService portssvc.LeadSvcFacade
	posthog     *utils.PosthogClientWrapper
}

func newLeadHandler(ls portssvc.LeadSvcFacade, posthog *utils.PosthogClientWrapper) *leadHandler {
	return &leadHandler{leadService: ls, posthog: posthog}
}

// registerLeadRoutes registers routes related to leads.
func registerLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade, posthog *utils.PosthogClientWrapper, lim *limiter.Limiter) {
	h := newLeadHandler(leadService, posthog)
	rg.POST("/leads", middleware.RateLimit(lim), h.createLead)
}

// createLead godoc
// @Summary Record a lead
// @Description Stores a sales lead (city, product, currency, amount)
// @Tags leads
// @Accept  json
// @Produce  json
// @Param   lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error naming the field"
// @Failure 500 {object} dto.ErrorResponse "Failed to create lead"
// @Router /leads [post]
func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "", "Failed to create lead")
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "", "Failed to create lead")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "lead_created", map[string]any{
		"lead_id":  lead.ID,
		"city":     lead.City,
		"product":  string(lead.Product),
		"currency": lead.Currency,
		"amount":   lead.Amount,
	})

	logger.Info("Lead created successfully", slog.Int64("lead_id", lead.ID))
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}
