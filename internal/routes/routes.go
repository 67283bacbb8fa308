package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/auth"
	"github.com/barberia-app/barberia-api/internal/calendar"
	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/handlers"
	infraRepo "github.com/barberia-app/barberia-api/internal/infra/repository"
	"github.com/barberia-app/barberia-api/internal/middleware"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/notify"
	ucAppointment "github.com/barberia-app/barberia-api/internal/usecase/appointment"
	ucAuth "github.com/barberia-app/barberia-api/internal/usecase/auth"
	ucBarber "github.com/barberia-app/barberia-api/internal/usecase/barber"
	ucClient "github.com/barberia-app/barberia-api/internal/usecase/client"
	ucNotification "github.com/barberia-app/barberia-api/internal/usecase/notification"
	ucOrganization "github.com/barberia-app/barberia-api/internal/usecase/organization"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {
	r.Use(middleware.CORSMiddleware())

	// ------------------------------------------------------
	// infra singletons
	// ------------------------------------------------------
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	identityRepo := infraRepo.NewIdentityGormRepository(db)
	refreshStore := infraRepo.NewRefreshTokenGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)

	tokens := auth.NewManager(cfg, refreshStore)
	hasher := auth.BcryptHasher{}
	googleVerifier := auth.NewGoogleVerifier()
	dispatcher := notify.NewDispatcher(notificationRepo, log)
	calSync := calendar.Disabled{}

	// ------------------------------------------------------
	// use cases
	// ------------------------------------------------------
	registerUC := ucAuth.NewRegister(identityRepo, tokens, hasher)
	loginUC := ucAuth.NewLogin(identityRepo, tokens, hasher)
	googleUC := ucAuth.NewGoogleSignIn(identityRepo, tokens, googleVerifier, cfg.GoogleClientID)
	refreshUC := ucAuth.NewRefreshSession(tokens)
	logoutUC := ucAuth.NewLogout(tokens)
	currentUserUC := ucAuth.NewCurrentUser(identityRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, dispatcher, calSync, log)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, dispatcher, calSync, log)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, dispatcher, calSync, log)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, calSync, log)

	createBarberUC := ucBarber.NewCreateBarber(identityRepo, hasher)
	getBarberUC := ucBarber.NewGetBarber(identityRepo)
	updateBarberUC := ucBarber.NewUpdateBarber(identityRepo)
	listBarbersUC := ucBarber.NewListBarbers(identityRepo)

	getClientUC := ucClient.NewGetClient(identityRepo)
	updateClientUC := ucClient.NewUpdateClient(identityRepo)

	getOrganizationUC := ucOrganization.NewGetOrganization(identityRepo)
	updateOrganizationUC := ucOrganization.NewUpdateOrganization(identityRepo)
	bootstrapOrganizationUC := ucOrganization.NewBootstrapOrganization(identityRepo, hasher)
	createAdminUC := ucOrganization.NewCreateAdmin(identityRepo, hasher)
	listOrganizationsUC := ucOrganization.NewListOrganizations(identityRepo)
	listUsersUC := ucOrganization.NewListUsers(identityRepo)

	listNotificationsUC := ucNotification.NewListNotifications(notificationRepo)
	markNotificationReadUC := ucNotification.NewMarkNotificationRead(notificationRepo)

	// ------------------------------------------------------
	// handlers
	// ------------------------------------------------------
	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, googleUC, refreshUC, logoutUC, currentUserUC,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC, getAppointmentUC, listAppointmentsUC,
		updateAppointmentUC, cancelAppointmentUC, deleteAppointmentUC,
	)
	barberHandler := handlers.NewBarberHandler(
		createBarberUC, getBarberUC, updateBarberUC, listBarbersUC,
	)
	clientHandler := handlers.NewClientHandler(getClientUC, updateClientUC)
	organizationHandler := handlers.NewOrganizationHandler(
		getOrganizationUC, updateOrganizationUC,
	)
	superadminHandler := handlers.NewSuperadminHandler(
		bootstrapOrganizationUC, createAdminUC, listOrganizationsUC, listUsersUC,
	)
	notificationHandler := handlers.NewNotificationHandler(
		listNotificationsUC, markNotificationReadUC,
	)

	api := r.Group("/api")
	{
		// ------------------------------
		// auth (rate limited)
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(middleware.RateLimitMiddleware(rdb, middleware.AuthRateLimit, log))
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
			authAPI.POST("/google", authHandler.GoogleSignIn)
			authAPI.POST("/refresh", authHandler.Refresh)
			authAPI.POST("/logout", authHandler.Logout)
		}

		// ------------------------------
		// private API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth/me", authHandler.Me)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/barbers/:id", barberHandler.Get)
			secured.PATCH("/barbers/:id", barberHandler.Update)

			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)

			secured.GET("/organizations/:id", organizationHandler.Get)
			secured.PATCH("/organizations/:id", organizationHandler.Update)
			secured.POST("/organizations/:id/barbers", barberHandler.Create)
			secured.GET("/organizations/:id/barbers", barberHandler.ListByOrganization)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// platform operations
			// ------------------------------
			admin := secured.Group("/superadmin")
			admin.Use(middleware.RequireRole(models.RoleSuperadmin))
			{
				admin.POST("/organizations", superadminHandler.BootstrapOrganization)
				admin.GET("/organizations", superadminHandler.ListOrganizations)
				admin.POST("/admins", superadminHandler.CreateAdmin)
				admin.GET("/users", superadminHandler.ListUsers)
			}
		}
	}
}
