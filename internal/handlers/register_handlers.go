package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hpvvs/salesops_backend/cmd/docs"
	portssvc "github.com/hpvvs/salesops_backend/internal/core/ports/services"
	"github.com/hpvvs/salesops_backend/internal/middleware"
	"github.com/hpvvs/salesops_backend/internal/platform/config"
	"github.com/hpvvs/salesops_backend/internal/platform/metrics"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	ledgerMetrics *metrics.LedgerMetrics,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if ledgerMetrics != nil {
		r.GET("/metrics", gin.WrapH(ledgerMetrics.Handler()))
	}

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/api/v1")
	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("failed to configure rate limit: %w", err)
		}
		v1.Use(middleware.RateLimit(limiterInstance))
	}

	if cfg.FeaturePayments {
		RegisterPaymentsRoutes(v1, service.Payments, timeutil.FromLocation(cfg.Location))
	}
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
