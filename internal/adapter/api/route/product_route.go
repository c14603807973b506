package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	productRouter.Use(auth.JWTAuthMiddleware())
	{
		productRouter.POST("", productController.Create)
		productRouter.GET("", productController.List)
		productRouter.GET("/export", productController.Export)
		productRouter.POST("/import", productController.Import)
		productRouter.POST("/bulk-delete", productController.BulkDelete)
		productRouter.GET("/:id", productController.GetByID)
		productRouter.PUT("/:id", productController.Update)
		productRouter.DELETE("/:id", productController.Delete)
	}
}
