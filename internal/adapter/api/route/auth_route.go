package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configura as rotas para o módulo de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh", authController.RefreshToken)

		// Rotas que requerem autenticação
		protected := authRouter.Group("")
		protected.Use(auth.JWTAuthMiddleware())
		{
			protected.POST("/logout", authController.Logout)
			protected.PATCH("/password", authController.ChangePassword)
			protected.GET("/me", authController.Me)
		}
	}
}
