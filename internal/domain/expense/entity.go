package expense

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyDescription = errors.New("descrição da despesa não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor da despesa deve ser maior que zero")
)

// Expense representa uma despesa lançada contra uma loja
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ShopID      string    `json:"shop_id"`
	ShopName    string    `json:"shop_name"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user_id"`
	Receipt     string    `json:"receipt,omitempty"`
	Approved    bool      `json:"approved"`
}

// NewExpense cria uma nova despesa pendente de aprovação (ID e data são
// atribuídos pelo contêiner de estado)
func NewExpense(description string, amount float64, shopID, shopName, category, userID, receipt string) (*Expense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Expense{
		Description: description,
		Amount:      amount,
		ShopID:      shopID,
		ShopName:    shopName,
		Category:    category,
		UserID:      userID,
		Receipt:     receipt,
		Approved:    false,
	}, nil
}
