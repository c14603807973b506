package controller

import (
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SettingsController gerencia as configurações do negócio e o tema
type SettingsController struct {
	container *state.Container
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(container *state.Container) *SettingsController {
	return &SettingsController{
		container: container,
	}
}

// Get retorna as configurações do negócio
// @Summary Retorna as configurações
// @Description Retorna as configurações globais do negócio
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(c.container.Settings()))
}

// Update atualiza parcialmente as configurações do negócio
// @Summary Atualiza as configurações
// @Description Aplica os campos presentes no corpo às configurações globais
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body dto.SettingsUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var request dto.SettingsUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	updated, err := c.container.UpdateSettings(ctx.Request.Context(), auth.CurrentUserID(ctx), request.ToSettingsPatch())
	if err != nil {
		respondContainerError(ctx, err, "Erro ao atualizar configurações")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(updated))
}

// GetTheme retorna o tema de interface atual
// @Summary Retorna o tema
// @Description Retorna o tema de interface persistido (claro ou escuro)
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ThemeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /settings/theme [get]
func (c *SettingsController) GetTheme(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ThemeResponse{Theme: c.container.Theme()})
}

// ToggleTheme alterna o tema de interface
// @Summary Alterna o tema
// @Description Alterna o tema de interface entre claro e escuro
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ThemeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings/theme/toggle [post]
func (c *SettingsController) ToggleTheme(ctx *gin.Context) {
	theme, err := c.container.ToggleTheme(ctx.Request.Context(), auth.CurrentUserID(ctx))
	if err != nil {
		respondContainerError(ctx, err, "Erro ao alternar tema")
		return
	}

	ctx.JSON(http.StatusOK, dto.ThemeResponse{Theme: theme})
}
