package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/notification"
)

// NotificationResponse representa a resposta com dados de uma notificação
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	ShopID    string    `json:"shop_id,omitempty"`
	Priority  string    `json:"priority"`
}

// ToNotificationResponse converte uma notificação do domínio para DTO de resposta
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		ShopID:    n.ShopID,
		Priority:  string(n.Priority),
	}
}

// ToNotificationListResponse converte uma lista de notificações do domínio para DTOs de resposta
func ToNotificationListResponse(notifications []notification.Notification) []NotificationResponse {
	data := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		data[i] = ToNotificationResponse(&notifications[i])
	}
	return data
}
