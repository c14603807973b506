package state

import (
	"context"
	"os"

	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// Bootstrap garante que um sistema recém-instalado tenha um proprietário
// inicial: quando nenhum usuário existe, cria a conta administradora com as
// credenciais de ADMIN_USERNAME/ADMIN_PASSWORD (admin/admin por padrão).
// Instalações já populadas não são tocadas.
func (c *Container) Bootstrap(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.users) > 0 {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	owner, err := user.NewUser(username, "Administrador", "", user.RoleOwner, "", []user.Permission{user.PermissionAll})
	if err != nil {
		return err
	}
	if err := owner.SetPassword(password); err != nil {
		return err
	}
	owner.ID = c.nextIDLocked()

	oldUsers := c.users
	c.users = []user.User{*owner}

	if err := c.persistLocked(ctx, storage.KeyUsers); err != nil {
		c.users = oldUsers
		return err
	}

	c.log.Info("Conta administradora inicial criada", "username", username)
	return nil
}

// SeedDemoData popula lojas e produtos de demonstração quando o catálogo
// está vazio e SEED_DEMO_DATA está habilitado. Útil para avaliação local;
// instalações com dados não são tocadas.
func (c *Container) SeedDemoData(ctx context.Context) error {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.shops) > 0 || len(c.products) > 0 {
		return nil
	}

	type shopSeed struct {
		name, location string
	}
	shopSeeds := []shopSeed{
		{"Maputo Central", "Av. 25 de Setembro, Maputo"},
		{"Matola Filial", "Av. da Namaacha, Matola"},
	}

	oldShops := c.shops
	oldProducts := c.products

	shopIDs := make([]string, 0, len(shopSeeds))
	for _, seed := range shopSeeds {
		s, err := shop.NewShop(seed.name, seed.location, "", "", "")
		if err != nil {
			return err
		}
		s.ID = c.nextIDLocked()
		shopIDs = append(shopIDs, s.ID)
		c.shops = append(c.shops, *s)
	}

	type productSeed struct {
		name, category string
		price          float64
		minStock       int
		stock          []int
	}
	productSeeds := []productSeed{
		{"Café em Grão 1kg", "Mercearia", 850, 15, []int{40, 25}},
		{"Arroz 5kg", "Mercearia", 620, 30, []int{120, 80}},
		{"Açúcar 2kg", "Mercearia", 180, 25, []int{90, 60}},
		{"Óleo Alimentar 1L", "Mercearia", 210, 20, []int{70, 45}},
		{"Sabão em Barra", "Higiene", 45, 40, []int{150, 100}},
	}
	for _, seed := range productSeeds {
		stock := make(map[string]int, len(shopIDs))
		for i, shopID := range shopIDs {
			if i < len(seed.stock) {
				stock[shopID] = seed.stock[i]
			}
		}
		p, err := product.NewProduct(seed.name, seed.category, seed.price, stock, seed.minStock, "", "")
		if err != nil {
			return err
		}
		p.ID = c.nextIDLocked()
		c.products = append(c.products, *p)
	}

	if err := c.persistLocked(ctx, storage.KeyShops, storage.KeyProducts); err != nil {
		c.shops = oldShops
		c.products = oldProducts
		return err
	}

	c.log.Info("Dados de demonstração criados", "shops", len(shopSeeds), "products", len(productSeeds))
	return nil
}
