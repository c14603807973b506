package state

import (
	"context"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/transfer"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// TransferStock move estoque de um produto entre duas lojas: baixa na origem
// e entrada no destino acontecem na mesma operação, sob o mutex, de modo que
// nenhum leitor observa o estoque em trânsito. Transferências acima do
// estoque disponível na origem são rejeitadas sem nenhuma mutação.
func (c *Container) TransferStock(ctx context.Context, actorID, productID, fromShopID, toShopID string, quantity int, notes string) (*transfer.StockTransfer, error) {
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
	from := c.findShopLocked(fromShopID)
	if from == nil {
		return nil, ErrShopNotFound
	}
	to := c.findShopLocked(toShopID)
	if to == nil {
		return nil, ErrShopNotFound
	}

	created, err := transfer.NewStockTransfer(prod.ID, prod.Name, from.ID, from.Name, to.ID, to.Name, quantity, actorID, notes)
	if err != nil {
		return nil, err
	}
	if prod.StockAt(fromShopID) < quantity {
		return nil, ErrInsufficientStock
	}
	created.ID = c.nextIDLocked()
	created.Date = time.Now()

	oldProducts := c.products
	oldTransfers := c.transfers
	oldActivities := c.activities

	nextProducts := c.withAdjustedStockLocked(productID, fromShopID, -quantity)
	for i := range nextProducts {
		if nextProducts[i].ID == productID {
			nextProducts[i].AdjustStock(toShopID, quantity)
		}
	}
	c.products = nextProducts

	next := make([]transfer.StockTransfer, 0, len(c.transfers)+1)
	next = append(next, c.transfers...)
	c.transfers = append(next, *created)

	c.appendActivityLocked(ctx, actor, activity.ActionStockTransfer, activity.Details{
		EntityID:   created.ProductID,
		EntityName: created.ProductName,
		Quantity:   created.Quantity,
		FromShop:   created.FromShopName,
		ToShop:     created.ToShopName,
	}, fromShopID)

	if err := c.persistLocked(ctx, storage.KeyProducts, storage.KeyTransfers, storage.KeyActivityLogs); err != nil {
		c.products = oldProducts
		c.transfers = oldTransfers
		c.activities = oldActivities
		return nil, err
	}

	c.log.Info("Transferência de estoque concluída",
		"product", created.ProductName,
		"from", created.FromShopName,
		"to", created.ToShopName,
		"quantity", quantity,
	)
	return created, nil
}
