package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/config"
	"github.com/accelhub-dev/accelhub/internal/handlers"
	"github.com/accelhub-dev/accelhub/internal/middleware"
	"github.com/accelhub-dev/accelhub/internal/services"
	"github.com/accelhub-dev/accelhub/internal/ws"
)

func New(database *gorm.DB, cfg config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	feed := ws.NewActivityHub(cfg.AllowedOrigins, logger)

	authHandler := handlers.NewAuthHandler(database, cfg.Domain)
	organizationHandler := handlers.NewOrganizationHandler(services.NewOrganizationService(database))
	startupHandler := handlers.NewStartupHandler(services.NewStartupService(database), feed)
	applicationHandler := handlers.NewApplicationHandler(services.NewApplicationService(database))
	programHandler := handlers.NewProgramHandler(services.NewProgramService(database))
	eventHandler := handlers.NewEventHandler(services.NewEventService(database))
	mentorshipHandler := handlers.NewMentorshipHandler(services.NewMentorshipService(database))
	investmentHandler := handlers.NewInvestmentHandler(services.NewInvestmentService(database))
	thesisHandler := handlers.NewThesisHandler(services.NewThesisService(database))
	contactHandler := handlers.NewContactHandler(services.NewContactService(database))
	claimHandler := handlers.NewClaimHandler(services.NewClaimService(database), feed)
	billHandler := handlers.NewBillHandler(services.NewBillService(database))
	vehicleHandler := handlers.NewVehicleHandler(services.NewVehicleService(database))
	driverHandler := handlers.NewDriverHandler(services.NewDriverService(database))
	hubHandler := handlers.NewHubHandler(services.NewHubService(database))
	insuranceCompanyHandler := handlers.NewInsuranceCompanyHandler(services.NewInsuranceCompanyService(database))
	repairOrganizationHandler := handlers.NewRepairOrganizationHandler(services.NewRepairOrganizationService(database))
	feedHandler := handlers.NewActivityFeedHandler(feed)

	requireAuth := middleware.Auth(database, middleware.AuthConfig{})

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:organization_id", requireAuth, feedHandler.Serve)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		organizations := api.Group("/organizations", requireAuth)
		{
			organizations.GET("", organizationHandler.List)
			organizations.GET("/:id", organizationHandler.Get)
			organizations.POST("", organizationHandler.Create)
			organizations.PUT("/:id", organizationHandler.Update)
			organizations.DELETE("/:id", organizationHandler.Delete)
		}

		startups := api.Group("/startups", requireAuth)
		{
			startups.GET("", startupHandler.List)
			startups.GET("/:id", startupHandler.Get)
			startups.POST("", startupHandler.Create)
			startups.PUT("/:id", startupHandler.Update)
			startups.POST("/:id/stage-change", startupHandler.ChangeStage)
			startups.DELETE("/:id", startupHandler.Delete)
		}

		applications := api.Group("/applications", requireAuth)
		{
			applications.GET("", applicationHandler.List)
			applications.GET("/:id", applicationHandler.Get)
			applications.POST("", applicationHandler.Create)
			applications.PUT("/:id", applicationHandler.Update)
			applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
			applications.DELETE("/:id", applicationHandler.Delete)
		}

		programs := api.Group("/programs", requireAuth)
		{
			programs.GET("", programHandler.List)
			programs.GET("/:id", programHandler.Get)
			programs.POST("", programHandler.Create)
			programs.PUT("/:id", programHandler.Update)
			programs.DELETE("/:id", programHandler.Delete)
		}

		events := api.Group("/events", requireAuth)
		{
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.Get)
			events.POST("", eventHandler.Create)
			events.PUT("/:id", eventHandler.Update)
			events.POST("/:id/attendees", eventHandler.AddAttendee)
			events.DELETE("/:id/attendees/:user_id", eventHandler.RemoveAttendee)
			events.DELETE("/:id", eventHandler.Delete)
		}

		mentorships := api.Group("/mentorships", requireAuth)
		{
			mentorships.GET("", mentorshipHandler.List)
			mentorships.GET("/:id", mentorshipHandler.Get)
			mentorships.POST("", mentorshipHandler.Create)
			mentorships.PUT("/:id", mentorshipHandler.Update)
			mentorships.POST("/:id/end", mentorshipHandler.End)
			mentorships.DELETE("/:id", mentorshipHandler.Delete)
		}

		investments := api.Group("/investments", requireAuth)
		{
			investments.GET("", investmentHandler.List)
			investments.GET("/:id", investmentHandler.Get)
			investments.POST("", investmentHandler.Create)
			investments.PUT("/:id", investmentHandler.Update)
			investments.DELETE("/:id", investmentHandler.Delete)
		}

		theses := api.Group("/theses", requireAuth)
		{
			theses.GET("", thesisHandler.List)
			theses.GET("/:id", thesisHandler.Get)
			theses.POST("", thesisHandler.Create)
			theses.PUT("/:id", thesisHandler.Update)
			theses.DELETE("/:id", thesisHandler.Delete)
		}

		contacts := api.Group("/contacts", requireAuth)
		{
			contacts.GET("", contactHandler.List)
			contacts.GET("/:id", contactHandler.Get)
			contacts.POST("", contactHandler.Create)
			contacts.PUT("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		claims := api.Group("/claims", requireAuth)
		{
			claims.GET("", claimHandler.List)
			claims.GET("/:id", claimHandler.Get)
			claims.POST("", claimHandler.Create)
			claims.PUT("/:id", claimHandler.Update)
			claims.PATCH("/:id/status", claimHandler.UpdateStatus)
			claims.DELETE("/:id", claimHandler.Delete)
		}

		bills := api.Group("/bills", requireAuth)
		{
			bills.GET("", billHandler.List)
			bills.GET("/:id", billHandler.Get)
			bills.POST("", billHandler.Create)
			bills.PUT("/:id", billHandler.Update)
			bills.DELETE("/:id", billHandler.Delete)
		}

		vehicles := api.Group("/vehicles", requireAuth)
		{
			vehicles.GET("", vehicleHandler.List)
			vehicles.GET("/:id", vehicleHandler.Get)
			vehicles.POST("", vehicleHandler.Create)
			vehicles.PUT("/:id", vehicleHandler.Update)
			vehicles.DELETE("/:id", vehicleHandler.Delete)
		}

		drivers := api.Group("/drivers", requireAuth)
		{
			drivers.GET("", driverHandler.List)
			drivers.GET("/:id", driverHandler.Get)
			drivers.POST("", driverHandler.Create)
			drivers.PUT("/:id", driverHandler.Update)
			drivers.DELETE("/:id", driverHandler.Delete)
		}

		hubs := api.Group("/hubs", requireAuth)
		{
			hubs.GET("", hubHandler.List)
			hubs.GET("/:id", hubHandler.Get)
			hubs.POST("", hubHandler.Create)
			hubs.PUT("/:id", hubHandler.Update)
			hubs.DELETE("/:id", hubHandler.Delete)
		}

		insuranceCompanies := api.Group("/insurance-companies", requireAuth)
		{
			insuranceCompanies.GET("", insuranceCompanyHandler.List)
			insuranceCompanies.GET("/:id", insuranceCompanyHandler.Get)
			insuranceCompanies.POST("", insuranceCompanyHandler.Create)
			insuranceCompanies.PUT("/:id", insuranceCompanyHandler.Update)
			insuranceCompanies.DELETE("/:id", insuranceCompanyHandler.Delete)
		}

		repairOrganizations := api.Group("/repair-organizations", requireAuth)
		{
			repairOrganizations.GET("", repairOrganizationHandler.List)
			repairOrganizations.GET("/:id", repairOrganizationHandler.Get)
			repairOrganizations.POST("", repairOrganizationHandler.Create)
			repairOrganizations.PUT("/:id", repairOrganizationHandler.Update)
			repairOrganizations.DELETE("/:id", repairOrganizationHandler.Delete)
		}
	}

	return r
}
