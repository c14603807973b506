package route

import (
	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupExpenseRoutes configura as rotas para o módulo de despesas
func SetupExpenseRoutes(router *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenseRouter := router.Group("/expenses")
	expenseRouter.Use(auth.JWTAuthMiddleware())
	{
		expenseRouter.POST("", expenseController.Create)
		expenseRouter.GET("", expenseController.List)

		// Aprovação é restrita a proprietário e gerente
		approver := expenseRouter.Group("")
		approver.Use(auth.RoleAuthMiddleware(string(user.RoleOwner), string(user.RoleManager)))
		{
			approver.PATCH("/:id/approve", expenseController.Approve)
		}
	}
}
