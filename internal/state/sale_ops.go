package state

import (
	"context"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/sale"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// RecordSale registra uma venda e baixa o estoque do produto na loja, em uma
// única operação atômica. Vendas acima do estoque disponível são rejeitadas
// sem nenhuma mutação.
func (c *Container) RecordSale(ctx context.Context, actorID, productID, shopID string, quantity int, customerName string, payment sale.PaymentMethod) (*sale.Sale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}

	prod := c.findProductLocked(productID)
	if prod == nil {
		return nil, ErrProductNotFound
	}
	shp := c.findShopLocked(shopID)
	if shp == nil {
		return nil, ErrShopNotFound
	}
	if prod.StockAt(shopID) < quantity {
		return nil, ErrInsufficientStock
	}

	created, err := sale.NewSale(prod.ID, prod.Name, shp.ID, shp.Name, quantity, prod.Price, actorID, customerName, payment)
	if err != nil {
		return nil, err
	}
	created.ID = c.nextIDLocked()
	created.Date = time.Now()

	oldProducts := c.products
	oldSales := c.sales
	oldActivities := c.activities

	next := make([]sale.Sale, 0, len(c.sales)+1)
	next = append(next, c.sales...)
	c.sales = append(next, *created)

	c.products = c.withAdjustedStockLocked(productID, shopID, -quantity)

	c.appendActivityLocked(ctx, actor, activity.ActionSaleCreate, activity.Details{
		EntityID:   created.ProductID,
		EntityName: created.ProductName,
		Quantity:   created.Quantity,
		Amount:     created.TotalAmount,
		Currency:   c.settings.Currency,
	}, shopID)

	if err := c.persistLocked(ctx, storage.KeySales, storage.KeyProducts, storage.KeyActivityLogs); err != nil {
		c.products = oldProducts
		c.sales = oldSales
		c.activities = oldActivities
		return nil, err
	}

	c.log.Info("Venda registrada", "product", created.ProductName, "shop", created.ShopName, "quantity", quantity)
	return created, nil
}
