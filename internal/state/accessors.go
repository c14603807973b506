package state

import (
	"github.com/Qathar8/ums-portal/internal/domain/expense"
	"github.com/Qathar8/ums-portal/internal/domain/notification"
	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/sale"
	"github.com/Qathar8/ums-portal/internal/domain/settings"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/domain/transfer"
	"github.com/Qathar8/ums-portal/internal/domain/user"
)

// Os acessores retornam cópias independentes: mutações nos valores
// retornados nunca afetam o estado interno do contêiner.

// Users retorna todos os usuários
func (c *Container) Users() []user.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]user.User, len(c.users))
	for i := range c.users {
		out[i] = *c.users[i].Clone()
	}
	return out
}

// UserByID busca um usuário pelo ID
func (c *Container) UserByID(id string) (*user.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.users {
		if c.users[i].ID == id {
			return c.users[i].Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

// UserByUsername busca um usuário pelo nome de usuário
func (c *Container) UserByUsername(username string) (*user.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.users {
		if c.users[i].Username == username {
			return c.users[i].Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

// Shops retorna todas as lojas
func (c *Container) Shops() []shop.Shop {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]shop.Shop(nil), c.shops...)
}

// VisibleShops retorna as lojas visíveis ao ator: todas para o proprietário
// e para usuários sem loja fixa, apenas a própria para os demais
func (c *Container) VisibleShops(actor *user.User) []shop.Shop {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]shop.Shop, 0, len(c.shops))
	for _, s := range c.shops {
		if actor.CanAccessShop(s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// ShopByID busca uma loja pelo ID
func (c *Container) ShopByID(id string) (*shop.Shop, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s := c.findShopLocked(id); s != nil {
		clone := *s
		return &clone, nil
	}
	return nil, ErrShopNotFound
}

// Products retorna todos os produtos
func (c *Container) Products() []product.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]product.Product, len(c.products))
	for i := range c.products {
		out[i] = *c.products[i].Clone()
	}
	return out
}

// Product busca um produto pelo ID
func (c *Container) Product(id string) (*product.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p := c.findProductLocked(id); p != nil {
		return p.Clone(), nil
	}
	return nil, ErrProductNotFound
}

// Sales retorna todas as vendas
func (c *Container) Sales() []sale.Sale {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]sale.Sale(nil), c.sales...)
}

// VisibleSales retorna as vendas das lojas acessíveis ao ator
func (c *Container) VisibleSales(actor *user.User) []sale.Sale {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]sale.Sale, 0, len(c.sales))
	for _, s := range c.sales {
		if actor.CanAccessShop(s.ShopID) {
			out = append(out, s)
		}
	}
	return out
}

// Expenses retorna todas as despesas
func (c *Container) Expenses() []expense.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]expense.Expense(nil), c.expenses...)
}

// VisibleExpenses retorna as despesas das lojas acessíveis ao ator
func (c *Container) VisibleExpenses(actor *user.User) []expense.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]expense.Expense, 0, len(c.expenses))
	for _, e := range c.expenses {
		if actor.CanAccessShop(e.ShopID) {
			out = append(out, e)
		}
	}
	return out
}

// Transfers retorna todas as transferências de estoque
func (c *Container) Transfers() []transfer.StockTransfer {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]transfer.StockTransfer(nil), c.transfers...)
}

// Notifications retorna todas as notificações
func (c *Container) Notifications() []notification.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]notification.Notification(nil), c.notifications...)
}

// Settings retorna as configurações do negócio
func (c *Container) Settings() settings.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.settings
}

// Theme retorna o tema de interface persistido
func (c *Container) Theme() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.theme
}

// findUserLocked localiza o usuário pelo ID; deve ser chamado sob o mutex
func (c *Container) findUserLocked(id string) *user.User {
	for i := range c.users {
		if c.users[i].ID == id {
			return &c.users[i]
		}
	}
	return nil
}

// findShopLocked localiza a loja pelo ID; deve ser chamado sob o mutex
func (c *Container) findShopLocked(id string) *shop.Shop {
	for i := range c.shops {
		if c.shops[i].ID == id {
			return &c.shops[i]
		}
	}
	return nil
}

// findProductLocked localiza o produto pelo ID; deve ser chamado sob o mutex
func (c *Container) findProductLocked(id string) *product.Product {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i]
		}
	}
	return nil
}
