package dto

import (
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/state"
)

// ProductRequest representa os dados de um produto para criação
type ProductRequest struct {
	Name     string         `json:"name" binding:"required"`
	Category string         `json:"category"`
	Price    float64        `json:"price" binding:"min=0"`
	Stock    map[string]int `json:"stock"`
	MinStock int            `json:"min_stock" binding:"min=0"`
	Barcode  string         `json:"barcode"`
	Supplier string         `json:"supplier"`
}

// ProductUpdateRequest representa uma atualização parcial de produto. Um
// mapa de estoque presente substitui o mapa inteiro.
type ProductUpdateRequest struct {
	Name     *string        `json:"name"`
	Category *string        `json:"category"`
	Price    *float64       `json:"price"`
	Stock    map[string]int `json:"stock"`
	MinStock *int           `json:"min_stock"`
	Barcode  *string        `json:"barcode"`
	Supplier *string        `json:"supplier"`
}

// BulkDeleteRequest representa os IDs de produtos para remoção em massa
type BulkDeleteRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required,min=1"`
}

// ProductResponse representa a resposta com dados de um produto
type ProductResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Price      float64        `json:"price"`
	Stock      map[string]int `json:"stock"`
	TotalStock int            `json:"total_stock"`
	MinStock   int            `json:"min_stock"`
	LowStock   bool           `json:"low_stock"`
	Barcode    string         `json:"barcode,omitempty"`
	Supplier   string         `json:"supplier,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ToProductResponse converte um produto do domínio para DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Stock:      p.Stock,
		TotalStock: p.TotalStock(),
		MinStock:   p.MinStock,
		LowStock:   p.IsLowStock(),
		Barcode:    p.Barcode,
		Supplier:   p.Supplier,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTOs de resposta
func ToProductListResponse(products []product.Product) []ProductResponse {
	data := make([]ProductResponse, len(products))
	for i := range products {
		data[i] = ToProductResponse(&products[i])
	}
	return data
}

// ToProductPatch converte a requisição de atualização para o patch do contêiner
func (r ProductUpdateRequest) ToProductPatch() state.ProductPatch {
	return state.ProductPatch{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Stock:    r.Stock,
		MinStock: r.MinStock,
		Barcode:  r.Barcode,
		Supplier: r.Supplier,
	}
}
