package transfer

import (
	"errors"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("quantidade da transferência deve ser maior que zero")
	ErrSameShop        = errors.New("lojas de origem e destino devem ser diferentes")
)

// Status representa o estado de uma transferência de estoque
type Status string

// Constantes para Status. Transferências são síncronas: são criadas já como
// StatusCompleted; os demais estados existem apenas para compatibilidade do
// formato persistido.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// StockTransfer representa uma movimentação de estoque entre duas lojas
type StockTransfer struct {
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
	Status       Status    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
}

// NewStockTransfer cria uma nova transferência concluída (ID e data são
// atribuídos pelo contêiner de estado)
func NewStockTransfer(productID, productName, fromShopID, fromShopName, toShopID, toShopName string, quantity int, userID, notes string) (*StockTransfer, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if fromShopID == toShopID {
		return nil, ErrSameShop
	}

	return &StockTransfer{
		ProductID:    productID,
		ProductName:  productName,
		FromShopID:   fromShopID,
		FromShopName: fromShopName,
		ToShopID:     toShopID,
		ToShopName:   toShopName,
		Quantity:     quantity,
		UserID:       userID,
		Status:       StatusCompleted,
		Notes:        notes,
	}, nil
}
