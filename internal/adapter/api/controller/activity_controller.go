package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/gin-gonic/gin"
)

// ActivityController gerencia as requisições do log de atividades
type ActivityController struct {
	container *state.Container
}

// NewActivityController cria uma nova instância de ActivityController
func NewActivityController(container *state.Container) *ActivityController {
	return &ActivityController{
		container: container,
	}
}

// List lista o log de atividades
// @Summary Lista o log de atividades
// @Description Retorna as entradas do log de atividades, mais recente primeiro
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ActivityResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /activity [get]
func (c *ActivityController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(c.container.ActivityLog()))
}
