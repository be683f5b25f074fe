package routes

import (
	"net/http"

	"ensemble-backend/internal/api/handlers"
	"ensemble-backend/internal/api/middleware"
	"ensemble-backend/internal/auth"
	"ensemble-backend/internal/config"
	"ensemble-backend/internal/repository"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validate := validator.New()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	subApplicationRepo := repository.NewSubApplicationRepository(db)
	turnoverRepo := repository.NewTurnoverRepository(db)
	entryRepo := repository.NewTurnoverEntryRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	toolSettingsRepo := repository.NewToolSettingsRepository(db)

	// Services
	centralClient := service.NewCentralAPIClient(cfg)
	teamService := service.NewTeamService(teamRepo, validate)
	registrationService := service.NewRegistrationService(registrationRepo, teamRepo, validate)
	applicationService := service.NewApplicationService(applicationRepo, teamRepo, centralClient, validate)
	subApplicationService := service.NewSubApplicationService(subApplicationRepo, applicationRepo, validate)
	turnoverService := service.NewTurnoverService(turnoverRepo, entryRepo, teamRepo, validate)
	draftService := service.NewDraftService(draftRepo, turnoverRepo, teamRepo, validate)
	flaggingService := service.NewFlaggingService(entryRepo, validate)
	snapshotService := service.NewSnapshotService(snapshotRepo, turnoverRepo, validate)
	linkService := service.NewLinkService(linkRepo, teamRepo, validate)
	toolSettingsService := service.NewToolSettingsService(toolSettingsRepo, teamRepo, validate)
	adminService := service.NewAdminService(teamRepo, applicationRepo, registrationRepo, entryRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	subApplicationHandler := handlers.NewSubApplicationHandler(subApplicationService)
	turnoverHandler := handlers.NewTurnoverHandler(turnoverService)
	draftHandler := handlers.NewDraftHandler(draftService)
	flaggingHandler := handlers.NewFlaggingHandler(flaggingService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	linkHandler := handlers.NewLinkHandler(linkService)
	toolSettingsHandler := handlers.NewToolSettingsHandler(toolSettingsService)
	adminHandler := handlers.NewAdminHandler(adminService)

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	if cfg.JWTSecret != "" {
		authMiddleware := auth.NewMiddleware(cfg.JWTSecret)
		v1.Use(authMiddleware.RequireAuth())
	}

	// Registrations
	v1.POST("/registrations", registrationHandler.Submit)
	v1.GET("/registrations", registrationHandler.List)
	v1.GET("/registrations/:id", registrationHandler.Get)
	v1.POST("/registrations/:id/approve", registrationHandler.Approve)
	v1.POST("/registrations/:id/reject", registrationHandler.Reject)

	// Teams
	v1.GET("/teams", teamHandler.List)
	v1.GET("/teams/by-name/:name", teamHandler.GetByName)
	v1.GET("/teams/:id", teamHandler.Get)
	v1.PUT("/teams/:id", teamHandler.Update)
	v1.POST("/teams/:id/deactivate", teamHandler.Deactivate)
	v1.POST("/teams/:id/reactivate", teamHandler.Reactivate)

	// Applications
	v1.POST("/applications", applicationHandler.Create)
	v1.POST("/applications/import", applicationHandler.AddFromCentralAPI)
	v1.GET("/applications/:id", applicationHandler.Get)
	v1.PUT("/applications/:id", applicationHandler.Update)
	v1.DELETE("/applications/:id", applicationHandler.Delete)
	v1.POST("/applications/:id/archive", applicationHandler.Archive)
	v1.POST("/applications/:id/sync", applicationHandler.SyncFromCentralAPI)
	v1.GET("/teams/:id/applications", applicationHandler.ListByTeam)

	// Sub-applications
	v1.POST("/sub-applications", subApplicationHandler.Create)
	v1.GET("/sub-applications/:id", subApplicationHandler.Get)
	v1.PUT("/sub-applications/:id", subApplicationHandler.Update)
	v1.DELETE("/sub-applications/:id", subApplicationHandler.Delete)
	v1.GET("/applications/:id/sub-applications", subApplicationHandler.ListByApplication)

	// Turnovers and entries
	v1.POST("/turnovers", turnoverHandler.Create)
	v1.GET("/turnovers/:id", turnoverHandler.Get)
	v1.POST("/turnovers/:id/complete", turnoverHandler.Complete)
	v1.POST("/turnovers/:id/archive", turnoverHandler.Archive)
	v1.POST("/turnovers/:id/entries", turnoverHandler.AddEntry)
	v1.GET("/teams/:id/turnovers", turnoverHandler.ListByTeam)
	v1.GET("/entries/:id", turnoverHandler.GetEntry)
	v1.PUT("/entries/:id", turnoverHandler.UpdateEntry)
	v1.DELETE("/entries/:id", turnoverHandler.DeleteEntry)

	// Drafts and prefill
	v1.PUT("/drafts", draftHandler.Save)
	v1.PUT("/drafts/autosave", draftHandler.AutoSave)
	v1.DELETE("/drafts/:id", draftHandler.Delete)
	v1.GET("/teams/:id/draft", draftHandler.Get)
	v1.GET("/teams/:id/drafts", draftHandler.List)
	v1.GET("/teams/:id/prefill", draftHandler.Prefill)

	// Flagging
	v1.POST("/entries/bulk-flag", flaggingHandler.BulkFlag)
	v1.POST("/entries/:id/flag", flaggingHandler.Flag)
	v1.POST("/entries/:id/unflag", flaggingHandler.Unflag)
	v1.GET("/teams/:id/flagged", flaggingHandler.ListFlagged)
	v1.GET("/teams/:id/flagged/counts", flaggingHandler.FlaggedCounts)

	// Snapshots
	v1.POST("/snapshots", snapshotHandler.Create)
	v1.GET("/snapshots/:id", snapshotHandler.Get)
	v1.GET("/teams/:id/snapshots", snapshotHandler.ListByTeam)
	v1.GET("/teams/:id/snapshots/:date", snapshotHandler.GetByDate)

	// Links
	v1.POST("/links", linkHandler.Create)
	v1.GET("/links/:id", linkHandler.Get)
	v1.PUT("/links/:id", linkHandler.Update)
	v1.DELETE("/links/:id", linkHandler.Delete)
	v1.POST("/links/:id/tags", linkHandler.AddTag)
	v1.DELETE("/links/:id/tags/:name", linkHandler.RemoveTag)
	v1.POST("/links/:id/access", linkHandler.RecordAccess)
	v1.POST("/link-categories", linkHandler.CreateCategory)
	v1.DELETE("/link-categories/:id", linkHandler.DeleteCategory)
	v1.GET("/teams/:id/links", linkHandler.ListByTeam)
	v1.GET("/teams/:id/links/popular", linkHandler.Popular)
	v1.GET("/teams/:id/link-categories", linkHandler.ListCategories)

	// Tool settings
	v1.GET("/tools", toolSettingsHandler.ListTools)
	v1.PUT("/tools/:tool/global", toolSettingsHandler.UpdateGlobal)
	v1.GET("/teams/:id/tools/:tool", toolSettingsHandler.GetEffective)
	v1.PUT("/teams/:id/tools/:tool", toolSettingsHandler.UpdateTeam)

	// Admin
	v1.GET("/admin/dashboard", adminHandler.DashboardCounts)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Response{
			Success: false,
			Error:   "route not found",
		})
	})

	return router
}
