package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/Qathar8/ums-portal/internal/domain/expense"
	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/sale"
	"github.com/Qathar8/ums-portal/internal/domain/transfer"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/gin-gonic/gin"
)

// responseStatus devolve o código HTTP gravado por respondContainerError
func responseStatus(err error) int {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	respondContainerError(ctx, err, "erro")
	return recorder.Code
}

func TestRespondContainerErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"credenciais inválidas", state.ErrInvalidCredentials, 401},
		{"produto não encontrado", state.ErrProductNotFound, 404},
		{"nome de usuário em uso", state.ErrUsernameTaken, 409},
		{"loja com usuários ativos", state.ErrShopHasUsers, 409},
		{"estoque insuficiente", state.ErrInsufficientStock, 400},
		{"transferência para a mesma loja", transfer.ErrSameShop, 400},
		{"quantidade de transferência inválida", transfer.ErrInvalidQuantity, 400},
		{"método de pagamento inválido", sale.ErrInvalidPayment, 400},
		{"quantidade de venda inválida", sale.ErrInvalidQuantity, 400},
		{"valor de despesa inválido", expense.ErrInvalidAmount, 400},
		{"preço de produto inválido", product.ErrInvalidPrice, 400},
	}

	for _, tc := range cases {
		if got := responseStatus(tc.err); got != tc.want {
			t.Errorf("%s: código esperado %d, obtido %d", tc.name, tc.want, got)
		}
	}
}
