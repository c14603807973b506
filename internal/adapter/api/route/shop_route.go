package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupShopRoutes configura as rotas para o módulo de lojas
func SetupShopRoutes(router *gin.RouterGroup, shopController *controller.ShopController) {
	shopRouter := router.Group("/shops")
	shopRouter.Use(auth.JWTAuthMiddleware())
	{
		shopRouter.GET("", shopController.List)
		shopRouter.GET("/:id", shopController.GetByID)

		// Mutações de loja são restritas ao proprietário
		owner := shopRouter.Group("")
		owner.Use(auth.RoleAuthMiddleware(string(user.RoleOwner)))
		{
			owner.POST("", shopController.Create)
			owner.PUT("/:id", shopController.Update)
			owner.DELETE("/:id", shopController.Delete)
		}
	}
}
