package shop

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName     = errors.New("nome da loja não pode ser vazio")
	ErrEmptyLocation = errors.New("localização da loja não pode ser vazia")
)

// Shop representa uma loja (ponto de venda) com estoque e equipe próprios
type Shop struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"is_active"`
	Manager   string    `json:"manager,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewShop cria uma nova loja ativa (o ID é atribuído pelo contêiner de estado)
func NewShop(name, location, manager, phone, email string) (*Shop, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}

	return &Shop{
		Name:      name,
		Location:  location,
		IsActive:  true,
		Manager:   manager,
		Phone:     phone,
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}
