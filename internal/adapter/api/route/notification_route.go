package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupNotificationRoutes configura as rotas do módulo de notificações
func SetupNotificationRoutes(router *gin.RouterGroup, notificationController *controller.NotificationController) {
	notificationRouter := router.Group("/notifications")
	notificationRouter.Use(auth.JWTAuthMiddleware())
	{
		notificationRouter.GET("", notificationController.List)
		notificationRouter.PATCH("/read-all", notificationController.MarkAllRead)
		notificationRouter.PATCH("/:id/read", notificationController.MarkRead)
	}
}
