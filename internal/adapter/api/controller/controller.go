package controller

import (
	"errors"
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/domain/expense"
	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/sale"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/domain/transfer"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/gin-gonic/gin"
)

// validationErrors reúne os erros sentinela de validação do domínio que podem
// chegar pelo corpo de uma requisição válida para o binding
var validationErrors = []error{
	user.ErrEmptyUsername,
	user.ErrEmptyName,
	user.ErrInvalidRole,
	shop.ErrEmptyName,
	shop.ErrEmptyLocation,
	product.ErrEmptyName,
	product.ErrInvalidPrice,
	product.ErrInvalidMinStock,
	sale.ErrInvalidQuantity,
	sale.ErrInvalidUnitPrice,
	sale.ErrInvalidPayment,
	expense.ErrEmptyDescription,
	expense.ErrInvalidAmount,
	transfer.ErrInvalidQuantity,
	transfer.ErrSameShop,
}

// isValidationError verifica se o erro é uma falha de validação do domínio
func isValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// respondContainerError traduz os erros sentinela do contêiner de estado
// para o código HTTP correspondente
func respondContainerError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, state.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
	case errors.Is(err, state.ErrUserNotFound),
		errors.Is(err, state.ErrShopNotFound),
		errors.Is(err, state.ErrProductNotFound),
		errors.Is(err, state.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Recurso não encontrado", err.Error()))
	case errors.Is(err, state.ErrUsernameTaken),
		errors.Is(err, state.ErrShopHasUsers):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Conflito", err.Error()))
	case errors.Is(err, state.ErrInsufficientStock):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Estoque insuficiente", err.Error()))
	case isValidationError(err):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}

// currentActor resolve o usuário autenticado da requisição. A autenticação é
// garantida pelo middleware; um ator ausente indica token de um usuário já
// removido.
func currentActor(ctx *gin.Context, container *state.Container) (*user.User, bool) {
	userID, _ := ctx.Get("user_id")
	id, _ := userID.(string)

	actor, err := container.UserByID(id)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Sessão inválida", "O usuário do token não existe mais"))
		return nil, false
	}
	return actor, true
}
