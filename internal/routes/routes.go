package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/backup"
	"github.com/BruksfildServices01/pulcro-admin/internal/config"
	"github.com/BruksfildServices01/pulcro-admin/internal/handlers"
	"github.com/BruksfildServices01/pulcro-admin/internal/middleware"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	ucAccount "github.com/BruksfildServices01/pulcro-admin/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/pulcro-admin/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/pulcro-admin/internal/usecase/catalog"
)

// Deps são os singletons montados no main
type Deps struct {
	Config *config.Config
	Store  *store.Store
	Audit  *audit.Dispatcher
	Backup *backup.Service // nil sem bucket
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	st := d.Store

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	loginUC := ucAccount.NewLogin(st, d.Audit)
	logoutUC := ucAccount.NewLogout(st, d.Audit)
	createUserUC := ucAccount.NewCreateUser(st, d.Audit)
	updateUserUC := ucAccount.NewUpdateUser(st, d.Audit)
	deleteUserUC := ucAccount.NewDeleteUser(st, d.Audit)

	createClientUC := ucCatalog.NewCreateClient(st, d.Audit)
	updateClientUC := ucCatalog.NewUpdateClient(st, d.Audit)
	deleteClientUC := ucCatalog.NewDeleteClient(st, d.Audit)
	deleteTeamUC := ucCatalog.NewDeleteTeam(st, d.Audit)
	deleteServiceTypeUC := ucCatalog.NewDeleteServiceType(st, d.Audit)

	createBookingUC := ucBooking.NewCreateBooking(st, d.Audit)
	updateBookingUC := ucBooking.NewUpdateBooking(st, d.Audit, cfg.StrictStatusTransitions)
	deleteBookingUC := ucBooking.NewDeleteBooking(st, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, loginUC, logoutUC)
	meHandler := handlers.NewMeHandler(st)

	clientHandler := handlers.NewClientHandler(st, createClientUC, updateClientUC, deleteClientUC)
	serviceTypeHandler := handlers.NewServiceTypeHandler(st, d.Audit, deleteServiceTypeUC)
	teamHandler := handlers.NewTeamHandler(st, d.Audit, deleteTeamUC)

	bookingHandler := handlers.NewBookingHandler(st, createBookingUC, updateBookingUC, deleteBookingUC)

	dashboardHandler := handlers.NewDashboardHandler(st)
	reportHandler := handlers.NewReportHandler(st)

	userHandler := handlers.NewUserHandler(st, createUserUC, updateUserUC, deleteUserUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(st)
	adminHandler := handlers.NewAdminHandler(st, d.Audit, d.Backup)

	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMinute)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": cfg.StorageDriver})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", middleware.RateLimit(loginLimiter), authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clientes", clientHandler.List)
			secured.POST("/clientes", clientHandler.Create)
			secured.GET("/clientes/:id", clientHandler.Get)
			secured.PATCH("/clientes/:id", clientHandler.Update)
			secured.DELETE("/clientes/:id", clientHandler.Delete)

			// ------------------------------
			// TIPOS DE SERVICIO
			// ------------------------------
			secured.GET("/tipos-servicio", serviceTypeHandler.List)
			secured.POST("/tipos-servicio", serviceTypeHandler.Create)
			secured.GET("/tipos-servicio/:id", serviceTypeHandler.Get)
			secured.PATCH("/tipos-servicio/:id", serviceTypeHandler.Update)
			secured.DELETE("/tipos-servicio/:id", serviceTypeHandler.Delete)

			// ------------------------------
			// EQUIPOS
			// ------------------------------
			secured.GET("/equipos", teamHandler.List)
			secured.POST("/equipos", teamHandler.Create)
			secured.GET("/equipos/:id", teamHandler.Get)
			secured.PATCH("/equipos/:id", teamHandler.Update)
			secured.DELETE("/equipos/:id", teamHandler.Delete)

			// ------------------------------
			// SERVICIOS (AGENDAMENTOS)
			// ------------------------------
			secured.GET("/servicios", bookingHandler.List)
			secured.POST("/servicios", bookingHandler.Create)
			secured.GET("/servicios/:id", bookingHandler.Get)
			secured.PATCH("/servicios/:id", bookingHandler.Update)
			secured.DELETE("/servicios/:id", bookingHandler.Delete)
			secured.GET("/servicios/:id/whatsapp", bookingHandler.WhatsApp)

			// ------------------------------
			// DASHBOARD / CALENDARIO
			// ------------------------------
			secured.GET("/dashboard/metrics", dashboardHandler.Metrics)
			secured.GET("/calendario/:year/:month", dashboardHandler.Calendar)

			// ------------------------------
			// REPORTES
			// ------------------------------
			secured.GET("/reportes/hoja-ruta", reportHandler.RouteSheet)
			secured.GET("/reportes/ganancias", reportHandler.Earnings)
			secured.GET("/reportes/clientes.csv", reportHandler.ClientsCSV)
			secured.GET("/reportes/servicios.csv", reportHandler.BookingsCSV)

			// ------------------------------
			// 👑 ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.AdminOnly(st.Users))
			{
				admin.GET("/usuarios", userHandler.List)
				admin.POST("/usuarios", userHandler.Create)
				admin.PATCH("/usuarios/:id", userHandler.Update)
				admin.DELETE("/usuarios/:id", userHandler.Delete)

				admin.GET("/auditoria", auditLogsHandler.List)

				admin.POST("/admin/backup", adminHandler.Backup)
				admin.POST("/admin/reset", adminHandler.Reset)
			}
		}
	}
}
