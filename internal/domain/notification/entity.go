package notification

import (
	"time"
)

// Type representa a natureza de uma notificação
type Type string

// Constantes para Type
const (
	TypeLowStock         Type = "low_stock"
	TypeHighSales        Type = "high_sales"
	TypeExpenseAlert     Type = "expense_alert"
	TypeTransferComplete Type = "transfer_complete"
	TypeUserAction       Type = "user_action"
)

// Priority representa a prioridade de exibição de uma notificação
type Priority string

// Constantes para Priority
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification representa um aviso exibido aos usuários. Nenhuma mutação de
// entidade cria notificações; elas chegam apenas por carga inicial.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	ShopID    string    `json:"shop_id,omitempty"`
	Priority  Priority  `json:"priority"`
}
