package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// TransferController gerencia as requisições de transferência de estoque
type TransferController struct {
	container *state.Container
}

// NewTransferController cria uma nova instância de TransferController
func NewTransferController(container *state.Container) *TransferController {
	return &TransferController{
		container: container,
	}
}

// Create executa uma transferência de estoque entre lojas
// @Summary Transfere estoque entre lojas
// @Description Baixa o estoque na loja de origem e credita na loja de destino
// @Tags transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transfer body dto.TransferRequest true "Dados da transferência"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transfers [post]
func (c *TransferController) Create(ctx *gin.Context) {
	var request dto.TransferRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	created, err := c.container.TransferStock(
		ctx.Request.Context(),
		auth.CurrentUserID(ctx),
		request.ProductID,
		request.FromShopID,
		request.ToShopID,
		request.Quantity,
		request.Notes,
	)
	if err != nil {
		respondContainerError(ctx, err, "Erro ao transferir estoque")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(created))
}

// List lista as transferências de estoque
// @Summary Lista transferências
// @Description Retorna todas as transferências de estoque registradas
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TransferResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /transfers [get]
func (c *TransferController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToTransferListResponse(c.container.Transfers()))
}
