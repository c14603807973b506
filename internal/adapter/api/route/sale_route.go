package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupSaleRoutes configura as rotas para o módulo de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	saleRouter.Use(auth.JWTAuthMiddleware())
	{
		saleRouter.POST("", saleController.Create)
		saleRouter.GET("", saleController.List)
	}
}
