package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupActivityRoutes configura as rotas do log de atividades
func SetupActivityRoutes(router *gin.RouterGroup, activityController *controller.ActivityController) {
	activityRouter := router.Group("/activity")
	activityRouter.Use(auth.JWTAuthMiddleware())
	activityRouter.Use(auth.RoleAuthMiddleware(string(user.RoleOwner), string(user.RoleManager)))
	{
		activityRouter.GET("", activityController.List)
	}
}
