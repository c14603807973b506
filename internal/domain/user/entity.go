package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyUsername = errors.New("nome de usuário não pode ser vazio")
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidRole   = errors.New("papel de usuário inválido")
)

// Role representa o papel/função do usuário no sistema
type Role string

// Constantes para Role
const (
	RoleOwner   Role = "owner"   // Proprietário, acesso irrestrito
	RoleManager Role = "manager" // Gerente de loja
	RoleCashier Role = "cashier" // Operador de caixa
)

// Valid verifica se o papel pertence ao conjunto fechado de papéis
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleCashier:
		return true
	}
	return false
}

// Permission representa uma capacidade concedida a um usuário
type Permission string

// Constantes para Permission
const (
	PermissionAll       Permission = "all" // Curinga: concede todas as capacidades
	PermissionProducts  Permission = "products"
	PermissionSales     Permission = "sales"
	PermissionExpenses  Permission = "expenses"
	PermissionTransfers Permission = "transfers"
	PermissionReports   Permission = "reports"
	PermissionUsers     Permission = "users"
	PermissionShops     Permission = "shops"
	PermissionSettings  Permission = "settings"
)

// User representa um usuário do sistema
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	Role         Role         `json:"role"`
	IsActive     bool         `json:"is_active"`
	ShopID       string       `json:"shop_id,omitempty"` // Vazio para usuários sem loja fixa
	Permissions  []Permission `json:"permissions"`
	PasswordHash string       `json:"password_hash,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	LastLogin    *time.Time   `json:"last_login,omitempty"`
}

// NewUser cria um novo usuário ativo (o ID é atribuído pelo contêiner de estado)
func NewUser(username, name, email string, role Role, shopID string, permissions []Permission) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	return &User{
		Username:    username,
		Name:        name,
		Email:       email,
		Role:        role,
		IsActive:    true,
		ShopID:      shopID,
		Permissions: append([]Permission(nil), permissions...),
		CreatedAt:   time.Now(),
	}, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsOwner verifica se o usuário é o proprietário
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// HasPermission verifica se o usuário possui a capacidade indicada.
// Proprietários sempre passam; o curinga "all" concede tudo.
func (u *User) HasPermission(p Permission) bool {
	if u.IsOwner() {
		return true
	}
	for _, granted := range u.Permissions {
		if granted == p || granted == PermissionAll {
			return true
		}
	}
	return false
}

// CanAccessShop verifica se o usuário tem acesso à loja indicada.
// Proprietários têm acesso a todas as lojas; usuários sem loja fixa também.
func (u *User) CanAccessShop(shopID string) bool {
	if u.IsOwner() {
		return true
	}
	return u.ShopID == "" || u.ShopID == shopID
}

// Clone retorna uma cópia independente do usuário
func (u *User) Clone() *User {
	clone := *u
	clone.Permissions = append([]Permission(nil), u.Permissions...)
	if u.LastLogin != nil {
		lastLogin := *u.LastLogin
		clone.LastLogin = &lastLogin
	}
	return &clone
}
