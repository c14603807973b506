package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/transfer"
)

// TransferRequest representa os dados de uma transferência de estoque
type TransferRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	FromShopID string `json:"from_shop_id" binding:"required"`
	ToShopID   string `json:"to_shop_id" binding:"required,nefield=FromShopID"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

// TransferResponse representa a resposta com dados de uma transferência
type TransferResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	FromShopID   string    `json:"from_shop_id"`
	FromShopName string    `json:"from_shop_name"`
	ToShopID     string    `json:"to_shop_id"`
	ToShopName   string    `json:"to_shop_name"`
	Quantity     int       `json:"quantity"`
	Date         time.Time `json:"date"`
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
}

// ToTransferResponse converte uma transferência do domínio para DTO de resposta
func ToTransferResponse(t *transfer.StockTransfer) TransferResponse {
	return TransferResponse{
		ID:           t.ID,
		ProductID:    t.ProductID,
		ProductName:  t.ProductName,
		FromShopID:   t.FromShopID,
		FromShopName: t.FromShopName,
		ToShopID:     t.ToShopID,
		ToShopName:   t.ToShopName,
		Quantity:     t.Quantity,
		Date:         t.Date,
		UserID:       t.UserID,
		Status:       string(t.Status),
		Notes:        t.Notes,
	}
}

// ToTransferListResponse converte uma lista de transferências do domínio para DTOs de resposta
func ToTransferListResponse(transfers []transfer.StockTransfer) []TransferResponse {
	data := make([]TransferResponse, len(transfers))
	for i := range transfers {
		data[i] = ToTransferResponse(&transfers[i])
	}
	return data
}
