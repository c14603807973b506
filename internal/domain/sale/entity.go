package sale

import (
	"errors"
	"time"
)

var (
	ErrInvalidQuantity  = errors.New("quantidade da venda deve ser maior que zero")
	ErrInvalidUnitPrice = errors.New("preço unitário da venda não pode ser negativo")
	ErrInvalidPayment   = errors.New("método de pagamento inválido")
)

// PaymentMethod representa o método de pagamento de uma venda
type PaymentMethod string

// Constantes para PaymentMethod
const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
)

// Valid verifica se o método pertence ao conjunto fechado de métodos
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	}
	return false
}

// Sale representa uma venda registrada. Os nomes do produto e da loja são
// capturados no momento da venda, imunes a renomeações posteriores.
type Sale struct {
	ID            string        `json:"id"`
	ProductID     string        `json:"product_id"`
	ProductName   string        `json:"product_name"`
	ShopID        string        `json:"shop_id"`
	ShopName      string        `json:"shop_name"`
	Quantity      int           `json:"quantity"`
	UnitPrice     float64       `json:"unit_price"`
	TotalAmount   float64       `json:"total_amount"`
	Date          time.Time     `json:"date"`
	UserID        string        `json:"user_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// NewSale cria uma nova venda (ID e data são atribuídos pelo contêiner de
// estado). O valor total é calculado como quantidade x preço unitário.
func NewSale(productID, productName, shopID, shopName string, quantity int, unitPrice float64, userID, customerName string, payment PaymentMethod) (*Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidUnitPrice
	}
	if !payment.Valid() {
		return nil, ErrInvalidPayment
	}

	return &Sale{
		ProductID:     productID,
		ProductName:   productName,
		ShopID:        shopID,
		ShopName:      shopName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalAmount:   float64(quantity) * unitPrice,
		UserID:        userID,
		CustomerName:  customerName,
		PaymentMethod: payment,
	}, nil
}
