package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/state"
)

// ShopRequest representa os dados de uma loja para criação
type ShopRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Manager  string `json:"manager"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// ShopUpdateRequest representa uma atualização parcial de loja
type ShopUpdateRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	IsActive *bool   `json:"is_active"`
	Manager  *string `json:"manager"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

// ShopResponse representa a resposta com dados de uma loja
type ShopResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"is_active"`
	Manager   string    `json:"manager,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToShopResponse converte uma loja do domínio para DTO de resposta
func ToShopResponse(s *shop.Shop) ShopResponse {
	return ShopResponse{
		ID:        s.ID,
		Name:      s.Name,
		Location:  s.Location,
		IsActive:  s.IsActive,
		Manager:   s.Manager,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}

// ToShopListResponse converte uma lista de lojas do domínio para DTOs de resposta
func ToShopListResponse(shops []shop.Shop) []ShopResponse {
	data := make([]ShopResponse, len(shops))
	for i := range shops {
		data[i] = ToShopResponse(&shops[i])
	}
	return data
}

// ToShopPatch converte a requisição de atualização para o patch do contêiner
func (r ShopUpdateRequest) ToShopPatch() state.ShopPatch {
	return state.ShopPatch{
		Name:     r.Name,
		Location: r.Location,
		IsActive: r.IsActive,
		Manager:  r.Manager,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}
