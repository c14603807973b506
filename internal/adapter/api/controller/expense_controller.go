package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// ExpenseController gerencia as requisições relacionadas a despesas
type ExpenseController struct {
	container *state.Container
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(container *state.Container) *ExpenseController {
	return &ExpenseController{
		container: container,
	}
}

// Create registra uma despesa
// @Summary Registra uma despesa
// @Description Lança uma despesa pendente de aprovação contra uma loja
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var request dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	created, err := c.container.RecordExpense(
		ctx.Request.Context(),
		auth.CurrentUserID(ctx),
		request.Description,
		request.Amount,
		request.ShopID,
		request.Category,
		request.Receipt,
	)
	if err != nil {
		respondContainerError(ctx, err, "Erro ao registrar despesa")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

// List lista as despesas visíveis ao usuário autenticado
// @Summary Lista despesas
// @Description Retorna as despesas das lojas acessíveis ao usuário autenticado
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx, c.container)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(c.container.VisibleExpenses(actor)))
}

// Approve aprova uma despesa
// @Summary Aprova uma despesa
// @Description Marca a despesa indicada como aprovada
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id}/approve [patch]
func (c *ExpenseController) Approve(ctx *gin.Context) {
	approved, err := c.container.ApproveExpense(ctx.Request.Context(), auth.CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondContainerError(ctx, err, "Erro ao aprovar despesa")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(approved))
}
