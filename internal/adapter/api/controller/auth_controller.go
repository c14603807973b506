package controller

import (
	"errors"
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	container *state.Container
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(container *state.Container) *AuthController {
	return &AuthController{
		container: container,
	}
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	reqCtx := state.WithClientIP(ctx.Request.Context(), ctx.ClientIP())
	u, err := c.container.Authenticate(reqCtx, request.Username, request.Password)
	if err != nil {
		if errors.Is(err, state.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao configurar autenticação", err.Error()))
		return
	}

	token, err := jwtService.GenerateToken(u)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   jwtService.ExpiresAt(),
	})
}

// RefreshToken renova um token JWT
// @Summary Renova um token JWT
// @Description Renova um token JWT existente
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao configurar autenticação", err.Error()))
		return
	}

	newToken, err := jwtService.RefreshToken(request.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: newToken,
		ExpiresAt:   jwtService.ExpiresAt(),
	})
}

// Logout registra a saída do usuário autenticado
// @Summary Encerra a sessão do usuário
// @Description Registra a saída do usuário no log de atividades
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	actorID := auth.CurrentUserID(ctx)

	if err := c.container.RecordLogout(ctx.Request.Context(), actorID); err != nil {
		respondContainerError(ctx, err, "Erro ao encerrar sessão")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sessão encerrada", nil))
}

// ChangePassword altera a senha do usuário autenticado
// @Summary Altera a senha do usuário
// @Description Valida a senha atual e grava a nova senha
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body dto.ChangePasswordRequest true "Senhas atual e nova"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/password [patch]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var request dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	actorID := auth.CurrentUserID(ctx)
	if err := c.container.ChangePassword(ctx.Request.Context(), actorID, request.CurrentPassword, request.NewPassword); err != nil {
		respondContainerError(ctx, err, "Erro ao alterar senha")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Senha alterada com sucesso", nil))
}

// Me retorna o usuário autenticado
// @Summary Retorna o usuário autenticado
// @Description Retorna os dados do usuário do token atual
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	actor, ok := currentActor(ctx, c.container)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(actor))
}
