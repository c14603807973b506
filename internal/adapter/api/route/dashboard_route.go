package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes configura as rotas do painel de indicadores
func SetupDashboardRoutes(router *gin.RouterGroup, dashboardController *controller.DashboardController) {
	dashboardRouter := router.Group("/dashboard")
	dashboardRouter.Use(auth.JWTAuthMiddleware())
	{
		dashboardRouter.GET("", dashboardController.Stats)
	}
}
