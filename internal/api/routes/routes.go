package routes

import (
	"net/http"

	"admin-console-backend/internal/api/handlers"
	"admin-console-backend/internal/api/middleware"
	"admin-console-backend/internal/audit"
	"admin-console-backend/internal/config"
	"admin-console-backend/internal/observability"
	"admin-console-backend/internal/repository"
	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, publisher audit.Publisher, version string) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(observability.HTTPMetricsMiddleware())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	eventRepo := repository.NewEventRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator, publisher)
	groupService := service.NewGroupService(groupRepo, validator, publisher)
	eventService := service.NewEventService(eventRepo, validator, publisher)
	surveyService := service.NewSurveyService(surveyRepo, validator, publisher)
	relationService := service.NewRelationService(relationRepo, validator, publisher)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, version)
	userHandler := handlers.NewUserHandler(userService)
	groupHandler := handlers.NewGroupHandler(groupService)
	eventHandler := handlers.NewEventHandler(eventService)
	surveyHandler := handlers.NewSurveyHandler(surveyService)
	relationHandler := handlers.NewRelationHandler(relationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(observability.Handler()))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.POST("/group", relationHandler.AddUserToGroup)
			users.DELETE("/group", relationHandler.RemoveUserFromGroup)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		groups := api.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.POST("/event", relationHandler.AddGroupToEvent)
			groups.DELETE("/event", relationHandler.RemoveGroupFromEvent)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.POST("/survey", relationHandler.AddSurveyToEvent)
			events.DELETE("/survey", relationHandler.RemoveSurveyFromEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		surveys := api.Group("/surveys")
		{
			surveys.GET("", surveyHandler.ListSurveys)
			surveys.POST("", surveyHandler.CreateSurvey)
			surveys.GET("/:id", surveyHandler.GetSurvey)
			surveys.PUT("/:id", surveyHandler.UpdateSurvey)
			surveys.DELETE("/:id", surveyHandler.DeleteSurvey)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.GET("/activity", dashboardHandler.GetActivity)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Response{Success: false, Error: "Route not found"})
	})

	return router
}
