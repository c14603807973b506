package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/domain/sale"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	container *state.Container
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(container *state.Container) *SaleController {
	return &SaleController{
		container: container,
	}
}

// Create registra uma venda
// @Summary Registra uma venda
// @Description Registra uma venda e baixa o estoque do produto na loja
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.SaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	created, err := c.container.RecordSale(
		ctx.Request.Context(),
		auth.CurrentUserID(ctx),
		request.ProductID,
		request.ShopID,
		request.Quantity,
		request.CustomerName,
		sale.PaymentMethod(request.PaymentMethod),
	)
	if err != nil {
		respondContainerError(ctx, err, "Erro ao registrar venda")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

// List lista as vendas visíveis ao usuário autenticado
// @Summary Lista vendas
// @Description Retorna as vendas das lojas acessíveis ao usuário autenticado
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx, c.container)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(c.container.VisibleSales(actor)))
}
