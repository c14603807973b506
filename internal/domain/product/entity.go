package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName       = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice    = errors.New("preço do produto não pode ser negativo")
	ErrInvalidMinStock = errors.New("estoque mínimo não pode ser negativo")
)

// Product representa um produto do catálogo. O estoque é mantido por loja,
// no mapa Stock (ID da loja -> quantidade em mãos, sempre >= 0).
type Product struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Price     float64        `json:"price"`
	Stock     map[string]int `json:"stock"`
	MinStock  int            `json:"min_stock"`
	Barcode   string         `json:"barcode,omitempty"`
	Supplier  string         `json:"supplier,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewProduct cria um novo produto (o ID é atribuído pelo contêiner de estado).
// Quantidades negativas no mapa de estoque inicial são saturadas em zero.
func NewProduct(name, category string, price float64, stock map[string]int, minStock int, barcode, supplier string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if minStock < 0 {
		return nil, ErrInvalidMinStock
	}

	cleanStock := make(map[string]int, len(stock))
	for shopID, qty := range stock {
		if qty < 0 {
			qty = 0
		}
		cleanStock[shopID] = qty
	}

	now := time.Now()
	return &Product{
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     cleanStock,
		MinStock:  minStock,
		Barcode:   barcode,
		Supplier:  supplier,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// StockAt retorna a quantidade em mãos na loja indicada
func (p *Product) StockAt(shopID string) int {
	return p.Stock[shopID]
}

// TotalStock retorna a quantidade total em mãos, somada sobre todas as lojas
func (p *Product) TotalStock() int {
	total := 0
	for _, qty := range p.Stock {
		total += qty
	}
	return total
}

// AdjustStock aplica um delta (positivo ou negativo) ao estoque da loja
// indicada. O resultado é saturado em zero, nunca negativo.
func (p *Product) AdjustStock(shopID string, delta int) {
	if p.Stock == nil {
		p.Stock = make(map[string]int)
	}
	qty := p.Stock[shopID] + delta
	if qty < 0 {
		qty = 0
	}
	p.Stock[shopID] = qty
	p.UpdatedAt = time.Now()
}

// IsLowStock verifica se o estoque total está estritamente abaixo do mínimo
func (p *Product) IsLowStock() bool {
	return p.TotalStock() < p.MinStock
}

// StockValue retorna o valor do estoque total ao preço atual
func (p *Product) StockValue() float64 {
	return float64(p.TotalStock()) * p.Price
}

// Clone retorna uma cópia independente do produto, incluindo o mapa de estoque
func (p *Product) Clone() *Product {
	clone := *p
	clone.Stock = make(map[string]int, len(p.Stock))
	for shopID, qty := range p.Stock {
		clone.Stock[shopID] = qty
	}
	return &clone
}
