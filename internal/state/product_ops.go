package state

import (
	"context"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// ProductPatch descreve uma atualização parcial de produto: apenas os campos
// não nulos são aplicados. Um mapa de estoque não nulo substitui o mapa
// inteiro.
type ProductPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Stock    map[string]int
	MinStock *int
	Barcode  *string
	Supplier *string
}

// AddProduct adiciona um produto ao catálogo em nome do ator
func (c *Container) AddProduct(ctx context.Context, actorID string, p *product.Product) (*product.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}

	oldProducts := c.products
	oldActivities := c.activities

	created := p.Clone()
	created.ID = c.nextIDLocked()
	c.products = append(append([]product.Product(nil), c.products...), *created)

	c.appendActivityLocked(ctx, actor, activity.ActionProductAdd, activity.Details{
		EntityID:   created.ID,
		EntityName: created.Name,
	}, "")

	if err := c.persistLocked(ctx, storage.KeyProducts, storage.KeyActivityLogs); err != nil {
		c.products = oldProducts
		c.activities = oldActivities
		return nil, err
	}

	c.log.Info("Produto adicionado", "id", created.ID, "name", created.Name)
	return created.Clone(), nil
}

// UpdateProduct aplica uma atualização parcial ao produto indicado.
// A tentativa é registrada no log de atividades mesmo quando o produto não
// existe; nesse caso a entrada usa o ID como rótulo e o erro é retornado.
func (c *Container) UpdateProduct(ctx context.Context, actorID, productID string, patch ProductPatch) (*product.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}

	oldProducts := c.products
	oldActivities := c.activities

	var updated *product.Product
	next := make([]product.Product, len(c.products))
	for i := range c.products {
		next[i] = *c.products[i].Clone()
		if next[i].ID != productID {
			continue
		}
		applyProductPatch(&next[i], patch)
		updated = &next[i]
	}

	details := activity.Details{EntityID: productID}
	if updated != nil {
		c.products = next
		details.EntityName = updated.Name
	}
	c.appendActivityLocked(ctx, actor, activity.ActionProductUpdate, details, "")

	keys := []string{storage.KeyActivityLogs}
	if updated != nil {
		keys = append(keys, storage.KeyProducts)
	}
	if err := c.persistLocked(ctx, keys...); err != nil {
		c.products = oldProducts
		c.activities = oldActivities
		return nil, err
	}

	if updated == nil {
		return nil, ErrProductNotFound
	}
	return updated.Clone(), nil
}

// DeleteProduct remove o produto indicado. A remoção de um produto
// inexistente não é um erro: a tentativa é registrada com o ID como rótulo e
// a operação conclui sem efeito.
func (c *Container) DeleteProduct(ctx context.Context, actorID, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return ErrUserNotFound
	}

	oldProducts := c.products
	oldActivities := c.activities

	details := activity.Details{EntityID: productID}
	next := make([]product.Product, 0, len(c.products))
	removed := false
	for i := range c.products {
		if c.products[i].ID == productID {
			details.EntityName = c.products[i].Name
			removed = true
			continue
		}
		next = append(next, c.products[i])
	}
	if removed {
		c.products = next
	}

	c.appendActivityLocked(ctx, actor, activity.ActionProductDelete, details, "")

	keys := []string{storage.KeyActivityLogs}
	if removed {
		keys = append(keys, storage.KeyProducts)
	}
	if err := c.persistLocked(ctx, keys...); err != nil {
		c.products = oldProducts
		c.activities = oldActivities
		return err
	}
	return nil
}

// BulkDeleteProducts remove de uma vez todos os produtos indicados. IDs
// inexistentes são ignorados; a entrada do log registra a quantidade pedida.
func (c *Container) BulkDeleteProducts(ctx context.Context, actorID string, productIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return ErrUserNotFound
	}

	oldProducts := c.products
	oldActivities := c.activities

	drop := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		drop[id] = true
	}

	next := make([]product.Product, 0, len(c.products))
	for i := range c.products {
		if !drop[c.products[i].ID] {
			next = append(next, c.products[i])
		}
	}
	c.products = next

	c.appendActivityLocked(ctx, actor, activity.ActionProductBulkDelete, activity.Details{
		Count: len(productIDs),
	}, "")

	if err := c.persistLocked(ctx, storage.KeyProducts, storage.KeyActivityLogs); err != nil {
		c.products = oldProducts
		c.activities = oldActivities
		return err
	}

	c.log.Info("Produtos removidos em massa", "count", len(productIDs))
	return nil
}

// withAdjustedStockLocked retorna uma cópia da coleção de produtos com o
// delta de estoque aplicado ao produto e loja indicados (saturado em zero).
// Deve ser chamado sob o mutex; o chamador troca a coleção e persiste.
func (c *Container) withAdjustedStockLocked(productID, shopID string, delta int) []product.Product {
	next := make([]product.Product, len(c.products))
	for i := range c.products {
		next[i] = *c.products[i].Clone()
		if next[i].ID == productID {
			next[i].AdjustStock(shopID, delta)
		}
	}
	return next
}

// applyProductPatch aplica os campos presentes do patch ao produto
func applyProductPatch(p *product.Product, patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		clean := make(map[string]int, len(patch.Stock))
		for shopID, qty := range patch.Stock {
			if qty < 0 {
				qty = 0
			}
			clean[shopID] = qty
		}
		p.Stock = clean
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.Barcode != nil {
		p.Barcode = *patch.Barcode
	}
	if patch.Supplier != nil {
		p.Supplier = *patch.Supplier
	}
	p.UpdatedAt = time.Now()
}
