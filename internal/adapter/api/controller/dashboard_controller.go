package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/gin-gonic/gin"
)

// DashboardController gerencia as requisições do painel de indicadores
type DashboardController struct {
	container *state.Container
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(container *state.Container) *DashboardController {
	return &DashboardController{
		container: container,
	}
}

// Stats retorna os indicadores do painel
// @Summary Retorna os indicadores do painel
// @Description Calcula os indicadores do painel para o usuário autenticado, respeitando a visibilidade de loja
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} state.DashboardStats
// @Failure 401 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	actor, ok := currentActor(ctx, c.container)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, c.container.Dashboard(actor))
}
