package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/expense"
)

// ExpenseRequest representa os dados de uma despesa para registro
type ExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	ShopID      string  `json:"shop_id" binding:"required"`
	Category    string  `json:"category"`
	Receipt     string  `json:"receipt"`
}

// ExpenseResponse representa a resposta com dados de uma despesa
type ExpenseResponse struct {
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

// ToExpenseResponse converte uma despesa do domínio para DTO de resposta
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		ShopID:      e.ShopID,
		ShopName:    e.ShopName,
		Category:    e.Category,
		Date:        e.Date,
		UserID:      e.UserID,
		Receipt:     e.Receipt,
		Approved:    e.Approved,
	}
}

// ToExpenseListResponse converte uma lista de despesas do domínio para DTOs de resposta
func ToExpenseListResponse(expenses []expense.Expense) []ExpenseResponse {
	data := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		data[i] = ToExpenseResponse(&expenses[i])
	}
	return data
}
