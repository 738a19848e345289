package router

import (
	"net/http"

	"github.com/fossclubsrm/forms-backend/config"
	"github.com/fossclubsrm/forms-backend/handlers"
	"github.com/fossclubsrm/forms-backend/middleware"
	"github.com/fossclubsrm/forms-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config           *config.Config
	FormHandler      *handlers.FormHandler
	FeedbackHandler  *handlers.FeedbackHandler
	FormAdminHandler *handlers.FormAdminHandler
	HealthHandler    *handlers.HealthHandler
	Logger           *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.Health)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Form Routes
	forms := r.Group("/forms")
	{
		forms.POST("/submit", deps.FormHandler.SubmitForm)
		forms.GET("/submissions", deps.FormHandler.ListSubmissions)
		forms.POST("/feedback", deps.FeedbackHandler.SubmitFeedback)

		forms.POST("", deps.FormAdminHandler.CreateForm)
		forms.GET("", deps.FormAdminHandler.ListForms)
		forms.GET("/:id", deps.FormAdminHandler.GetForm)
	}

	// Any unmatched path returns the structured not-found payload.
	r.NoRoute(func(c *gin.Context) {
		if deps.Logger != nil {
			deps.Logger.Warnw("Route not found",
				"method", c.Request.Method, "path", c.Request.URL.Path)
		}
		c.JSON(http.StatusNotFound, types.NotFoundResponse{
			Status:  http.StatusNotFound,
			Message: "Route not found",
		})
	})

	return r
}
