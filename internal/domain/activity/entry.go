package activity

import (
	"fmt"
	"time"
)

// MaxEntries é o limite de retenção do log de atividades: apenas as
// entradas mais recentes são mantidas, as mais antigas são descartadas.
const MaxEntries = 100

// Action representa o tipo de ação registrada no log de atividades.
// O conjunto é fechado: toda mutação do sistema mapeia para uma constante.
type Action string

// Constantes para Action
const (
	ActionLogin             Action = "LOGIN"
	ActionLogout            Action = "LOGOUT"
	ActionPasswordChange    Action = "PASSWORD_CHANGE"
	ActionThemeChange       Action = "THEME_CHANGE"
	ActionProductAdd        Action = "PRODUCT_ADD"
	ActionProductUpdate     Action = "PRODUCT_UPDATE"
	ActionProductDelete     Action = "PRODUCT_DELETE"
	ActionProductBulkDelete Action = "PRODUCT_BULK_DELETE"
	ActionSaleCreate        Action = "SALE_CREATE"
	ActionExpenseCreate     Action = "EXPENSE_CREATE"
	ActionExpenseApprove    Action = "EXPENSE_APPROVE"
	ActionStockTransfer     Action = "STOCK_TRANSFER"
	ActionUserCreate        Action = "USER_CREATE"
	ActionUserUpdate        Action = "USER_UPDATE"
	ActionUserDelete        Action = "USER_DELETE"
	ActionShopCreate        Action = "SHOP_CREATE"
	ActionShopUpdate        Action = "SHOP_UPDATE"
	ActionShopDelete        Action = "SHOP_DELETE"
	ActionSettingsUpdate    Action = "SETTINGS_UPDATE"
)

// Details carrega os dados estruturados de uma entrada do log. Apenas os
// campos pertinentes à ação são preenchidos; o restante fica zerado e é
// omitido na serialização.
type Details struct {
	EntityID   string  `json:"entity_id,omitempty"`
	EntityName string  `json:"entity_name,omitempty"`
	Quantity   int     `json:"quantity,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Currency   string  `json:"currency,omitempty"`
	FromShop   string  `json:"from_shop,omitempty"`
	ToShop     string  `json:"to_shop,omitempty"`
	Role       string  `json:"role,omitempty"`
	Theme      string  `json:"theme,omitempty"`
	Count      int     `json:"count,omitempty"`
}

// Entry representa uma entrada do log de atividades
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    Action    `json:"action"`
	Details   Details   `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	ShopID    string    `json:"shop_id,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
}

// label retorna o nome da entidade quando capturado, senão o ID
func (d Details) label() string {
	if d.EntityName != "" {
		return d.EntityName
	}
	return d.EntityID
}

// Describe produz a descrição legível da entrada a partir dos dados
// estruturados. Ações desconhecidas (de versões futuras) degradam para o
// próprio código da ação.
func (e Entry) Describe() string {
	d := e.Details
	switch e.Action {
	case ActionLogin:
		return "Usuário entrou no sistema"
	case ActionLogout:
		return "Usuário saiu do sistema"
	case ActionPasswordChange:
		return "Usuário alterou a senha"
	case ActionThemeChange:
		return fmt.Sprintf("Tema alterado para %s", d.Theme)
	case ActionProductAdd:
		return fmt.Sprintf("Produto adicionado: %s", d.EntityName)
	case ActionProductUpdate:
		return fmt.Sprintf("Produto atualizado: %s", d.label())
	case ActionProductDelete:
		return fmt.Sprintf("Produto removido: %s", d.label())
	case ActionProductBulkDelete:
		return fmt.Sprintf("%d produtos removidos em massa", d.Count)
	case ActionSaleCreate:
		return fmt.Sprintf("Venda registrada: %dx %s (%s %.2f)", d.Quantity, d.EntityName, d.Currency, d.Amount)
	case ActionExpenseCreate:
		return fmt.Sprintf("Despesa registrada: %s (%s %.2f)", d.EntityName, d.Currency, d.Amount)
	case ActionExpenseApprove:
		return fmt.Sprintf("Despesa aprovada: %s", d.label())
	case ActionStockTransfer:
		return fmt.Sprintf("Transferência de %dx %s: %s → %s", d.Quantity, d.EntityName, d.FromShop, d.ToShop)
	case ActionUserCreate:
		return fmt.Sprintf("Usuário criado: %s (%s)", d.EntityName, d.Role)
	case ActionUserUpdate:
		return fmt.Sprintf("Usuário atualizado: %s", d.label())
	case ActionUserDelete:
		return fmt.Sprintf("Usuário removido: %s", d.label())
	case ActionShopCreate:
		return fmt.Sprintf("Loja criada: %s", d.EntityName)
	case ActionShopUpdate:
		return fmt.Sprintf("Loja atualizada: %s", d.label())
	case ActionShopDelete:
		return fmt.Sprintf("Loja removida: %s", d.label())
	case ActionSettingsUpdate:
		return "Configurações do sistema atualizadas"
	}
	return string(e.Action)
}
