package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupTransferRoutes configura as rotas para o módulo de transferências
func SetupTransferRoutes(router *gin.RouterGroup, transferController *controller.TransferController) {
	transferRouter := router.Group("/transfers")
	transferRouter.Use(auth.JWTAuthMiddleware())
	{
		transferRouter.POST("", transferController.Create)
		transferRouter.GET("", transferController.List)
	}
}
