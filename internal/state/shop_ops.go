package state

import (
	"context"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// ShopPatch descreve uma atualização parcial de loja: apenas os campos não
// nulos são aplicados
type ShopPatch struct {
	Name     *string
	Location *string
	IsActive *bool
	Manager  *string
	Phone    *string
	Email    *string
}

// AddShop cria uma loja em nome do ator
func (c *Container) AddShop(ctx context.Context, actorID string, s *shop.Shop) (*shop.Shop, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}

	created := *s
	created.ID = c.nextIDLocked()

	oldShops := c.shops
	oldActivities := c.activities

	next := make([]shop.Shop, 0, len(c.shops)+1)
	next = append(next, c.shops...)
	c.shops = append(next, created)

	c.appendActivityLocked(ctx, actor, activity.ActionShopCreate, activity.Details{
		EntityID:   created.ID,
		EntityName: created.Name,
	}, created.ID)

	if err := c.persistLocked(ctx, storage.KeyShops, storage.KeyActivityLogs); err != nil {
		c.shops = oldShops
		c.activities = oldActivities
		return nil, err
	}

	c.log.Info("Loja criada", "id", created.ID, "name", created.Name)
	out := created
	return &out, nil
}

// UpdateShop aplica uma atualização parcial à loja indicada. A tentativa é
// registrada no log de atividades mesmo quando a loja não existe; nesse caso
// a entrada usa o ID como rótulo e o erro é retornado.
func (c *Container) UpdateShop(ctx context.Context, actorID, shopID string, patch ShopPatch) (*shop.Shop, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}

	oldShops := c.shops
	oldActivities := c.activities

	var updated *shop.Shop
	next := make([]shop.Shop, len(c.shops))
	for i := range c.shops {
		next[i] = c.shops[i]
		if next[i].ID != shopID {
			continue
		}
		applyShopPatch(&next[i], patch)
		updated = &next[i]
	}

	details := activity.Details{EntityID: shopID}
	if updated != nil {
		c.shops = next
		details.EntityName = updated.Name
	}
	c.appendActivityLocked(ctx, actor, activity.ActionShopUpdate, details, shopID)

	keys := []string{storage.KeyActivityLogs}
	if updated != nil {
		keys = append(keys, storage.KeyShops)
	}
	if err := c.persistLocked(ctx, keys...); err != nil {
		c.shops = oldShops
		c.activities = oldActivities
		return nil, err
	}

	if updated == nil {
		return nil, ErrShopNotFound
	}
	out := *updated
	return &out, nil
}

// DeleteShop remove a loja indicada. Lojas com usuários ativos vinculados
// não podem ser removidas. A remoção de uma loja inexistente não é um erro:
// a tentativa é registrada com o ID como rótulo e a operação conclui sem
// efeito.
func (c *Container) DeleteShop(ctx context.Context, actorID, shopID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return ErrUserNotFound
	}
	for i := range c.users {
		if c.users[i].ShopID == shopID && c.users[i].IsActive {
			return ErrShopHasUsers
		}
	}

	oldShops := c.shops
	oldActivities := c.activities

	details := activity.Details{EntityID: shopID}
	next := make([]shop.Shop, 0, len(c.shops))
	removed := false
	for i := range c.shops {
		if c.shops[i].ID == shopID {
			details.EntityName = c.shops[i].Name
			removed = true
			continue
		}
		next = append(next, c.shops[i])
	}
	if removed {
		c.shops = next
	}

	c.appendActivityLocked(ctx, actor, activity.ActionShopDelete, details, shopID)

	keys := []string{storage.KeyActivityLogs}
	if removed {
		keys = append(keys, storage.KeyShops)
	}
	if err := c.persistLocked(ctx, keys...); err != nil {
		c.shops = oldShops
		c.activities = oldActivities
		return err
	}
	return nil
}

// applyShopPatch aplica os campos presentes do patch à loja
func applyShopPatch(s *shop.Shop, patch ShopPatch) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Location != nil {
		s.Location = *patch.Location
	}
	if patch.IsActive != nil {
		s.IsActive = *patch.IsActive
	}
	if patch.Manager != nil {
		s.Manager = *patch.Manager
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
}
