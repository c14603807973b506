package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/gin-gonic/gin"
)

// NotificationController gerencia as requisições de notificações
type NotificationController struct {
	container *state.Container
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(container *state.Container) *NotificationController {
	return &NotificationController{
		container: container,
	}
}

// List lista as notificações
// @Summary Lista notificações
// @Description Retorna todas as notificações
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.NotificationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(c.container.Notifications()))
}

// MarkRead marca uma notificação como lida
// @Summary Marca uma notificação como lida
// @Description Marca a notificação indicada como lida; IDs inexistentes concluem sem efeito
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.container.MarkNotificationRead(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondContainerError(ctx, err, "Erro ao marcar notificação")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificação marcada como lida", nil))
}

// MarkAllRead marca todas as notificações como lidas
// @Summary Marca todas as notificações como lidas
// @Description Marca todas as notificações como lidas
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/read-all [patch]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.container.MarkAllNotificationsRead(ctx.Request.Context()); err != nil {
		respondContainerError(ctx, err, "Erro ao marcar notificações")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificações marcadas como lidas", nil))
}
