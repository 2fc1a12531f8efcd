package handlers

import (
	"net/http"

	"github.com/SscSPs/household_ledger/cmd/docs"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/importing/csvsource"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	profiles *csvsource.Registry,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, profiles)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	profiles *csvsource.Registry,
) {
	// An empty secret lets every request through.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.AuthSecret))

	registerAccountRoutes(v1, service.Account, service.Ledger)
	registerJournalRoutes(v1, service.Ledger)
	registerCategoryRoutes(v1, service.Category)
	registerReportingRoutes(v1, service.Balance)
	registerImportRoutes(v1, service.Import, profiles, cfg.DefaultBankAccount)
	registerPropertyRoutes(v1, service.Property, service.Equity)
	registerMortgageRoutes(v1, service.Mortgage)
	registerAllocationRoutes(v1, service.Allocation)
	registerTransferRoutes(v1, service.Transfer)
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
