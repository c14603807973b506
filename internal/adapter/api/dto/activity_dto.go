package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
)

// ActivityResponse representa a resposta com uma entrada do log de
// atividades, incluindo a descrição legível derivada dos dados estruturados
type ActivityResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	UserName    string           `json:"user_name"`
	Action      string           `json:"action"`
	Description string           `json:"description"`
	Details     activity.Details `json:"details"`
	Timestamp   time.Time        `json:"timestamp"`
	ShopID      string           `json:"shop_id,omitempty"`
	IPAddress   string           `json:"ip_address,omitempty"`
}

// ToActivityResponse converte uma entrada do log para DTO de resposta
func ToActivityResponse(e activity.Entry) ActivityResponse {
	return ActivityResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		UserName:    e.UserName,
		Action:      string(e.Action),
		Description: e.Describe(),
		Details:     e.Details,
		Timestamp:   e.Timestamp,
		ShopID:      e.ShopID,
		IPAddress:   e.IPAddress,
	}
}

// ToActivityListResponse converte o log de atividades para DTOs de resposta
func ToActivityListResponse(entries []activity.Entry) []ActivityResponse {
	data := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		data[i] = ToActivityResponse(e)
	}
	return data
}
