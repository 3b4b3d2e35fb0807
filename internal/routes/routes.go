package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"impactio/internal/handlers"
	"impactio/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	auth middleware.Authenticator,
	loginPath string,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	dashboardHandler *handlers.DashboardHandler,
	exportHandler *handlers.ExportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ---- protected
	r.Use(middleware.AuthMiddleware(auth, loginPath))

	dash := r.Group("/dashboard")
	{
		dash.GET("", dashboardHandler.Overview)
		dash.GET("/metrics", dashboardHandler.Metrics)
		dash.GET("/charts", dashboardHandler.Charts)
		dash.GET("/leads", dashboardHandler.Leads)

		dash.GET("/filters", dashboardHandler.GetFilters)
		dash.PUT("/filters", dashboardHandler.PutFilters)
		dash.DELETE("/filters", dashboardHandler.ResetFilters)

		dash.GET("/leads/export", exportHandler.Download)
		dash.POST("/leads/export/email", exportHandler.Email)
		dash.POST("/digest", exportHandler.Digest)
	}

	return r
}
