package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backend/internal/config"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/dto"
	"github.com/BruksfildServices01/salon-backend/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-backend/internal/infra/repository"
	"github.com/BruksfildServices01/salon-backend/internal/metrics"
	"github.com/BruksfildServices01/salon-backend/internal/middleware"
	"github.com/BruksfildServices01/salon-backend/internal/session"
	"github.com/BruksfildServices01/salon-backend/internal/validators"
)

// NewRouter builds the engine with every route and the global middleware.
func NewRouter(db *gorm.DB, cfg *config.Config, tokens *session.Manager, log logrus.FieldLogger) *gin.Engine {
	binding.Validator = validators.Gin()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		metrics.Middleware(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	RegisterRoutes(r, db, cfg, tokens, log)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, tokens *session.Manager, log logrus.FieldLogger) {

	// ======================================================
	// INFRA
	// ======================================================
	repo := infraRepo.NewSalonGormRepository(db)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(repo, tokens, cfg.CheckEmailDomain)
	technicianHandler := handlers.NewTechnicianHandler(repo)
	appointmentHandler := handlers.NewAppointmentHandler(repo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	requireAuth := middleware.AuthMiddleware(tokens, repo, log)

	api := r.Group("/api")
	{
		// ------------------------------
		// ACCOUNTS
		// ------------------------------
		user := api.Group("/user")
		{
			user.POST("/create/", authHandler.Register)
			user.POST("/token/", authHandler.Token)

			me := user.Group("/", requireAuth)
			me.GET("/me/", authHandler.Me)
			me.PATCH("/me/", authHandler.UpdateMe)
			me.POST("/logout/", authHandler.Logout)
		}

		// ------------------------------
		// SALON
		// ------------------------------
		salonAPI := api.Group("/salon", requireAuth)
		registerCatalog(salonAPI, db)
		technicianHandler.Register(salonAPI.Group("/technicians"))
		appointmentHandler.Register(salonAPI.Group("/appointments"))

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs/", requireAuth, middleware.RequireSuperuser(), auditLogsHandler.List)
	}
}

func registerCatalog(g *gin.RouterGroup, db *gorm.DB) {
	handlers.NewResourceHandler(db, "branch", salon.BranchFieldsOf, dto.Branch).Register(g.Group("/branches"))
	handlers.NewResourceHandler(db, "skill", salon.SkillFieldsOf, dto.Skill).Register(g.Group("/skills"))
	handlers.NewResourceHandler(db, "service", salon.ServiceFieldsOf, dto.Service).Register(g.Group("/services"))
	handlers.NewResourceHandler(db, "payment", salon.PaymentFieldsOf, dto.Payment).Register(g.Group("/payments"))
	handlers.NewResourceHandler(db, "discount", salon.DiscountFieldsOf, dto.Discount).Register(g.Group("/discounts"))
	handlers.NewResourceHandler(db, "promo", salon.PromoFieldsOf, dto.Promo).Register(g.Group("/promos"))
	handlers.NewResourceHandler(db, "client", salon.ClientFieldsOf, dto.Client).Register(g.Group("/clients"))
}
