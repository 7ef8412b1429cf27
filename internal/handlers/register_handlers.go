package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/docs"
	"github.com/SscSPs/forex_widget/internal/middleware"
	"github.com/SscSPs/forex_widget/internal/platform/config"
	"github.com/SscSPs/forex_widget/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps are the optional collaborators of the HTTP layer.
type RouteDeps struct {
	Posthog *utils.PosthogClientWrapper
	Limiter *limiter.Limiter                // nil disables rate limiting
	DBPing  func(ctx context.Context) error // nil when no database is configured
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	r.GET("/health", healthHandler(cfg.EnableDBCheck, deps.DBPing))

	setupAPIRoutes(r, services, deps)

	setupSwaggerRoutes(r, cfg)
}

func healthHandler(checkDB bool, ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checkDB && ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromContext(c).Error("Database health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "DB unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupAPIRoutes configures the /api group and delegates to specific route registrations
func setupAPIRoutes(r *gin.Engine, services *portssvc.ServiceContainer, deps RouteDeps) {
	api := r.Group("/api")

	registerCityRoutes(api, services.City)
	registerRateRoutes(api, services.Rate, services.BetterRate, deps.Limiter)
	registerLeadRoutes(api, services.Lead, deps.Posthog, deps.Limiter)
	registerCurrencyRoutes(api, services.CurrencyPicker)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
