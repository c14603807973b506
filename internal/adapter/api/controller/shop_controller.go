package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// ShopController gerencia as requisições relacionadas a lojas
type ShopController struct {
	container *state.Container
}

// NewShopController cria uma nova instância de ShopController
func NewShopController(container *state.Container) *ShopController {
	return &ShopController{
		container: container,
	}
}

// Create cria uma nova loja
// @Summary Cria uma loja
// @Description Cria uma nova loja ativa
// @Tags shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shop body dto.ShopRequest true "Dados da loja"
// @Success 201 {object} dto.ShopResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shops [post]
func (c *ShopController) Create(ctx *gin.Context) {
	var request dto.ShopRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := shop.NewShop(request.Name, request.Location, request.Manager, request.Phone, request.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados de loja inválidos", err.Error()))
		return
	}

	created, err := c.container.AddShop(ctx.Request.Context(), auth.CurrentUserID(ctx), s)
	if err != nil {
		respondContainerError(ctx, err, "Erro ao criar loja")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToShopResponse(created))
}

// List lista as lojas visíveis ao usuário autenticado
// @Summary Lista lojas
// @Description Retorna as lojas acessíveis ao usuário autenticado
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ShopResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /shops [get]
func (c *ShopController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx, c.container)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopListResponse(c.container.VisibleShops(actor)))
}

// GetByID busca uma loja pelo ID
// @Summary Busca uma loja
// @Description Retorna a loja com o ID indicado
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.ShopResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id} [get]
func (c *ShopController) GetByID(ctx *gin.Context) {
	s, err := c.container.ShopByID(ctx.Param("id"))
	if err != nil {
		respondContainerError(ctx, err, "Erro ao buscar loja")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopResponse(s))
}

// Update atualiza parcialmente uma loja
// @Summary Atualiza uma loja
// @Description Aplica os campos presentes no corpo à loja indicada
// @Tags shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da loja"
// @Param shop body dto.ShopUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.ShopResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shops/{id} [put]
func (c *ShopController) Update(ctx *gin.Context) {
	var request dto.ShopUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	updated, err := c.container.UpdateShop(ctx.Request.Context(), auth.CurrentUserID(ctx), ctx.Param("id"), request.ToShopPatch())
	if err != nil {
		respondContainerError(ctx, err, "Erro ao atualizar loja")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopResponse(updated))
}

// Delete remove uma loja
// @Summary Remove uma loja
// @Description Remove a loja indicada; lojas com usuários ativos vinculados são rejeitadas
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shops/{id} [delete]
func (c *ShopController) Delete(ctx *gin.Context) {
	if err := c.container.DeleteShop(ctx.Request.Context(), auth.CurrentUserID(ctx), ctx.Param("id")); err != nil {
		respondContainerError(ctx, err, "Erro ao remover loja")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Loja removida", nil))
}
