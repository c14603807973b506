package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	{
		// Administração de usuários é restrita ao proprietário
		userRouter.Use(auth.JWTAuthMiddleware())
		userRouter.Use(auth.RoleAuthMiddleware(string(user.RoleOwner)))
		{
			userRouter.POST("", userController.Create)
			userRouter.GET("", userController.List)
			userRouter.GET("/:id", userController.GetByID)
			userRouter.PUT("/:id", userController.Update)
			userRouter.DELETE("/:id", userController.Delete)
		}
	}
}
