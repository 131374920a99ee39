package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/handler"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	appH *handler.ApplicationHandler,
	emiH *handler.EMIHandler,
	productH *handler.ProductHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public calculator and catalog routes
	emi := v1.Group("/emi")
	emi.POST("/calculate", emiH.Calculate)
	emi.GET("/banks", emiH.ListBanks)
	emi.GET("/banks/:id", emiH.GetBank)
	emi.POST("/schedule/export", emiH.ExportSchedule)

	products := v1.Group("/products")
	products.GET("/search", productH.Search)
	products.GET("/:slug", productH.GetBySlug)

	// Opening a session is public; everything on the session requires its token
	v1.POST("/applications", appH.Start)

	session := v1.Group("/applications/me")
	session.Use(middleware.SessionMiddleware(&cfg.Session))
	session.GET("", appH.Get)
	session.DELETE("", appH.Abandon)
	session.POST("/option", appH.ChooseOption)
	session.PUT("/variant", appH.SetVariant)
	session.PUT("/applicant", appH.UpdateApplicant)
	session.PUT("/guarantor", appH.UpdateGuarantor)
	session.PUT("/bank-or-card", appH.UpdateBankOrCard)
	session.PUT("/emi-parameters", appH.UpdateEMIParameters)
	session.POST("/documents/:slot", appH.UploadDocument)
	session.DELETE("/documents/:slot", appH.RemoveDocument)
	session.POST("/advance", appH.Advance)
	session.POST("/back", appH.Back)
	session.POST("/jump", appH.JumpTo)
	session.POST("/submit", appH.Submit)

	return r
}
