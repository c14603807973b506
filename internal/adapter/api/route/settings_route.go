package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupSettingsRoutes configura as rotas de configurações e tema
func SetupSettingsRoutes(router *gin.RouterGroup, settingsController *controller.SettingsController) {
	settingsRouter := router.Group("/settings")
	settingsRouter.Use(auth.JWTAuthMiddleware())
	{
		settingsRouter.GET("", settingsController.Get)
		settingsRouter.GET("/theme", settingsController.GetTheme)
		settingsRouter.POST("/theme/toggle", settingsController.ToggleTheme)

		// Alteração das configurações é restrita ao proprietário
		owner := settingsRouter.Group("")
		owner.Use(auth.RoleAuthMiddleware(string(user.RoleOwner)))
		{
			owner.PUT("", settingsController.Update)
		}
	}
}
