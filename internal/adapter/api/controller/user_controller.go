package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	container *state.Container
}

// NewUserController cria uma nova instância de UserController
func NewUserController(container *state.Container) *UserController {
	return &UserController{
		container: container,
	}
}

// Create cria um novo usuário
// @Summary Cria um usuário
// @Description Cria um novo usuário do sistema
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := user.NewUser(request.Username, request.Name, request.Email, user.Role(request.Role), request.ShopID, dto.ToPermissions(request.Permissions))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados de usuário inválidos", err.Error()))
		return
	}

	created, err := c.container.AddUser(ctx.Request.Context(), auth.CurrentUserID(ctx), u, request.Password)
	if err != nil {
		respondContainerError(ctx, err, "Erro ao criar usuário")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(created))
}

// List lista os usuários do sistema
// @Summary Lista usuários
// @Description Retorna todos os usuários do sistema
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToUserListResponse(c.container.Users()))
}

// GetByID busca um usuário pelo ID
// @Summary Busca um usuário
// @Description Retorna o usuário com o ID indicado
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	u, err := c.container.UserByID(ctx.Param("id"))
	if err != nil {
		respondContainerError(ctx, err, "Erro ao buscar usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Update atualiza parcialmente um usuário
// @Summary Atualiza um usuário
// @Description Aplica os campos presentes no corpo ao usuário indicado
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param user body dto.UserUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var request dto.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	updated, err := c.container.UpdateUser(ctx.Request.Context(), auth.CurrentUserID(ctx), ctx.Param("id"), request.ToUserPatch())
	if err != nil {
		respondContainerError(ctx, err, "Erro ao atualizar usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// Delete remove um usuário
// @Summary Remove um usuário
// @Description Remove o usuário indicado; IDs inexistentes concluem sem efeito
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.container.DeleteUser(ctx.Request.Context(), auth.CurrentUserID(ctx), ctx.Param("id")); err != nil {
		respondContainerError(ctx, err, "Erro ao remover usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Usuário removido", nil))
}
