package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestSaleRequestPaymentMethodBinding(t *testing.T) {
	valid := SaleRequest{ProductID: "1", ShopID: "1", Quantity: 1, PaymentMethod: "cash"}
	if err := binding.Validator.ValidateStruct(&valid); err != nil {
		t.Errorf("método de pagamento conhecido deveria passar: %v", err)
	}

	invalid := SaleRequest{ProductID: "1", ShopID: "1", Quantity: 1, PaymentMethod: "bitcoin"}
	if err := binding.Validator.ValidateStruct(&invalid); err == nil {
		t.Errorf("método de pagamento desconhecido deveria ser recusado no binding")
	}
}

func TestTransferRequestSameShopBinding(t *testing.T) {
	valid := TransferRequest{ProductID: "1", FromShopID: "a", ToShopID: "b", Quantity: 1}
	if err := binding.Validator.ValidateStruct(&valid); err != nil {
		t.Errorf("lojas distintas deveriam passar: %v", err)
	}

	invalid := TransferRequest{ProductID: "1", FromShopID: "a", ToShopID: "a", Quantity: 1}
	if err := binding.Validator.ValidateStruct(&invalid); err == nil {
		t.Errorf("origem e destino iguais deveriam ser recusados no binding")
	}
}
