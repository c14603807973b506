package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/sale"
)

// SaleRequest representa os dados de uma venda para registro. O preço
// unitário é o preço de catálogo do produto no momento da venda.
type SaleRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	ShopID        string `json:"shop_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	CustomerName  string `json:"customer_name"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card mobile"`
}

// SaleResponse representa a resposta com dados de uma venda
type SaleResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	ShopID        string    `json:"shop_id"`
	ShopName      string    `json:"shop_name"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	TotalAmount   float64   `json:"total_amount"`
	Date          time.Time `json:"date"`
	UserID        string    `json:"user_id"`
	CustomerName  string    `json:"customer_name,omitempty"`
	PaymentMethod string    `json:"payment_method"`
}

// ToSaleResponse converte uma venda do domínio para DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		ProductName:   s.ProductName,
		ShopID:        s.ShopID,
		ShopName:      s.ShopName,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		Date:          s.Date,
		UserID:        s.UserID,
		CustomerName:  s.CustomerName,
		PaymentMethod: string(s.PaymentMethod),
	}
}

// ToSaleListResponse converte uma lista de vendas do domínio para DTOs de resposta
func ToSaleListResponse(sales []sale.Sale) []SaleResponse {
	data := make([]SaleResponse, len(sales))
	for i := range sales {
		data[i] = ToSaleResponse(&sales[i])
	}
	return data
}
