package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/state"
)

// UserRequest representa os dados de um usuário para criação
type UserRequest struct {
	Username    string   `json:"username" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Role        string   `json:"role" binding:"required"`
	ShopID      string   `json:"shop_id"`
	Permissions []string `json:"permissions"`
}

// UserUpdateRequest representa uma atualização parcial de usuário: apenas os
// campos presentes no corpo são aplicados
type UserUpdateRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Role        *string  `json:"role"`
	IsActive    *bool    `json:"is_active"`
	ShopID      *string  `json:"shop_id"`
	Permissions []string `json:"permissions"`
	Password    *string  `json:"password"`
}

// UserResponse representa a resposta com dados de um usuário. O hash de
// senha nunca é exposto.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	ShopID      string     `json:"shop_id,omitempty"`
	Permissions []string   `json:"permissions"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// ToUserResponse converte um usuário do domínio para DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	permissions := make([]string, len(u.Permissions))
	for i, p := range u.Permissions {
		permissions[i] = string(p)
	}

	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		ShopID:      u.ShopID,
		Permissions: permissions,
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTOs de resposta
func ToUserListResponse(users []user.User) []UserResponse {
	data := make([]UserResponse, len(users))
	for i := range users {
		data[i] = ToUserResponse(&users[i])
	}
	return data
}

// ToPermissions converte a lista de permissões textuais para o domínio
func ToPermissions(values []string) []user.Permission {
	if values == nil {
		return nil
	}
	permissions := make([]user.Permission, len(values))
	for i, v := range values {
		permissions[i] = user.Permission(v)
	}
	return permissions
}

// ToUserPatch converte a requisição de atualização para o patch do contêiner
func (r UserUpdateRequest) ToUserPatch() state.UserPatch {
	patch := state.UserPatch{
		Name:        r.Name,
		Email:       r.Email,
		IsActive:    r.IsActive,
		ShopID:      r.ShopID,
		Permissions: ToPermissions(r.Permissions),
		Password:    r.Password,
	}
	if r.Role != nil {
		role := user.Role(*r.Role)
		patch.Role = &role
	}
	return patch
}
