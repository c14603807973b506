package state_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/sale"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/logger"
)

// newTestContainer cria um contêiner hidratado de um armazenamento em
// memória, com a conta administradora inicial
func newTestContainer(t *testing.T) (*state.Container, *user.User) {
	t.Helper()

	c, err := state.New(storage.NewMemoryStore(), logger.NewLogger())
	if err != nil {
		t.Fatalf("erro ao criar contêiner: %v", err)
	}
	if err := c.Bootstrap(context.Background()); err != nil {
		t.Fatalf("erro no bootstrap: %v", err)
	}

	admin, err := c.UserByUsername("admin")
	if err != nil {
		t.Fatalf("conta administradora não criada: %v", err)
	}
	return c, admin
}

// addShop registra uma loja de teste
func addShop(t *testing.T, c *state.Container, actorID, name string) *shop.Shop {
	t.Helper()

	s, err := shop.NewShop(name, "Localização de teste", "", "", "")
	if err != nil {
		t.Fatalf("erro ao construir loja: %v", err)
	}
	created, err := c.AddShop(context.Background(), actorID, s)
	if err != nil {
		t.Fatalf("erro ao criar loja: %v", err)
	}
	return created
}

// addProduct registra um produto de teste com o estoque fornecido
func addProduct(t *testing.T, c *state.Container, actorID, name string, price float64, stock map[string]int, minStock int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(name, "Teste", price, stock, minStock, "", "")
	if err != nil {
		t.Fatalf("erro ao construir produto: %v", err)
	}
	created, err := c.AddProduct(context.Background(), actorID, p)
	if err != nil {
		t.Fatalf("erro ao criar produto: %v", err)
	}
	return created
}

// mustUser constrói um gerente de teste vinculado à loja indicada
func mustUser(t *testing.T, username, name, shopID string) *user.User {
	t.Helper()

	u, err := user.NewUser(username, name, "", user.RoleManager, shopID, []user.Permission{user.PermissionSales, user.PermissionReports})
	if err != nil {
		t.Fatalf("erro ao construir usuário: %v", err)
	}
	return u
}

func TestAuthenticate(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	if admin.LastLogin != nil {
		t.Fatalf("LastLogin deveria iniciar vazio")
	}

	u, err := c.Authenticate(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("login válido rejeitado: %v", err)
	}
	if u.LastLogin == nil {
		t.Errorf("LastLogin não foi atualizado no login")
	}

	logs := c.ActivityLog()
	if len(logs) != 1 || logs[0].Action != activity.ActionLogin {
		t.Errorf("login deveria registrar exatamente uma entrada LOGIN, obtido %d entradas", len(logs))
	}
}

func TestAuthenticateWrongPasswordDoesNotMutate(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	if _, err := c.Authenticate(ctx, "admin", "senha-errada"); err != state.ErrInvalidCredentials {
		t.Fatalf("esperado ErrInvalidCredentials, obtido %v", err)
	}
	if _, err := c.Authenticate(ctx, "inexistente", "admin"); err != state.ErrInvalidCredentials {
		t.Fatalf("usuário desconhecido deveria produzir o mesmo erro, obtido %v", err)
	}

	admin, _ := c.UserByUsername("admin")
	if admin.LastLogin != nil {
		t.Errorf("falha de login não deveria atualizar LastLogin")
	}
	if len(c.ActivityLog()) != 0 {
		t.Errorf("falha de login não deveria registrar atividade")
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	u, err := user.NewUser("carla", "Carla Mucavele", "", user.RoleCashier, "", []user.Permission{user.PermissionSales})
	if err != nil {
		t.Fatalf("erro ao construir usuário: %v", err)
	}
	created, err := c.AddUser(ctx, admin.ID, u, "segredo1")
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}

	inactive := false
	if _, err := c.UpdateUser(ctx, admin.ID, created.ID, state.UserPatch{IsActive: &inactive}); err != nil {
		t.Fatalf("erro ao desativar usuário: %v", err)
	}

	if _, err := c.Authenticate(ctx, "carla", "segredo1"); err != state.ErrInvalidCredentials {
		t.Errorf("usuário inativo deveria ser rejeitado com ErrInvalidCredentials, obtido %v", err)
	}
}

func TestRecordSale(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	s := addShop(t, c, admin.ID, "Loja Central")
	p := addProduct(t, c, admin.ID, "Arroz 5kg", 620, map[string]int{s.ID: 50}, 10)

	created, err := c.RecordSale(ctx, admin.ID, p.ID, s.ID, 3, "Cliente Balcão", sale.PaymentCash)
	if err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}
	if created.TotalAmount != 1860 {
		t.Errorf("valor total esperado 1860, obtido %.2f", created.TotalAmount)
	}

	after, _ := c.Product(p.ID)
	if after.StockAt(s.ID) != 47 {
		t.Errorf("estoque esperado 47 após a venda, obtido %d", after.StockAt(s.ID))
	}
	if got := len(c.Sales()); got != 1 {
		t.Errorf("esperada exatamente uma venda, obtidas %d", got)
	}

	var saleEntries int
	for _, e := range c.ActivityLog() {
		if e.Action == activity.ActionSaleCreate {
			saleEntries++
		}
	}
	if saleEntries != 1 {
		t.Errorf("esperada exatamente uma entrada SALE_CREATE, obtidas %d", saleEntries)
	}
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	s := addShop(t, c, admin.ID, "Loja Central")
	p := addProduct(t, c, admin.ID, "Açúcar 2kg", 180, map[string]int{s.ID: 2}, 5)

	if _, err := c.RecordSale(ctx, admin.ID, p.ID, s.ID, 3, "", sale.PaymentCash); err != state.ErrInsufficientStock {
		t.Fatalf("esperado ErrInsufficientStock, obtido %v", err)
	}

	after, _ := c.Product(p.ID)
	if after.StockAt(s.ID) != 2 {
		t.Errorf("venda rejeitada não deveria alterar o estoque, obtido %d", after.StockAt(s.ID))
	}
	if len(c.Sales()) != 0 {
		t.Errorf("venda rejeitada não deveria ser registrada")
	}
}

func TestTransferStockConservesTotal(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	from := addShop(t, c, admin.ID, "Maputo Central")
	to := addShop(t, c, admin.ID, "Matola Filial")
	p := addProduct(t, c, admin.ID, "Óleo Alimentar 1L", 210, map[string]int{from.ID: 30, to.ID: 5}, 10)

	created, err := c.TransferStock(ctx, admin.ID, p.ID, from.ID, to.ID, 12, "reposição")
	if err != nil {
		t.Fatalf("erro na transferência: %v", err)
	}
	if created.Status != "completed" {
		t.Errorf("transferência deveria nascer concluída, obtido %q", created.Status)
	}

	after, _ := c.Product(p.ID)
	if after.StockAt(from.ID) != 18 || after.StockAt(to.ID) != 17 {
		t.Errorf("estoques esperados 18/17, obtidos %d/%d", after.StockAt(from.ID), after.StockAt(to.ID))
	}
	if after.TotalStock() != 35 {
		t.Errorf("transferência deveria conservar o estoque total, obtido %d", after.TotalStock())
	}
}

func TestTransferStockRejections(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	from := addShop(t, c, admin.ID, "Maputo Central")
	to := addShop(t, c, admin.ID, "Matola Filial")
	p := addProduct(t, c, admin.ID, "Sabão em Barra", 45, map[string]int{from.ID: 4}, 10)

	if _, err := c.TransferStock(ctx, admin.ID, p.ID, from.ID, to.ID, 10, ""); err != state.ErrInsufficientStock {
		t.Errorf("esperado ErrInsufficientStock, obtido %v", err)
	}
	if _, err := c.TransferStock(ctx, admin.ID, p.ID, from.ID, from.ID, 1, ""); err == nil {
		t.Errorf("transferência para a mesma loja deveria ser rejeitada")
	}

	after, _ := c.Product(p.ID)
	if after.TotalStock() != 4 {
		t.Errorf("transferências rejeitadas não deveriam alterar o estoque")
	}
}

func TestActivityLogCap(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	for i := 0; i < activity.MaxEntries+1; i++ {
		p, err := product.NewProduct(fmt.Sprintf("Produto %03d", i), "Teste", 10, nil, 1, "", "")
		if err != nil {
			t.Fatalf("erro ao construir produto: %v", err)
		}
		if _, err := c.AddProduct(ctx, admin.ID, p); err != nil {
			t.Fatalf("erro ao criar produto: %v", err)
		}
	}

	logs := c.ActivityLog()
	if len(logs) != activity.MaxEntries {
		t.Fatalf("log deveria reter %d entradas, obtidas %d", activity.MaxEntries, len(logs))
	}

	// Mais recente primeiro: a última adição abre o log e a primeira foi descartada
	if logs[0].Details.EntityName != fmt.Sprintf("Produto %03d", activity.MaxEntries) {
		t.Errorf("entrada mais recente esperada no topo, obtida %q", logs[0].Details.EntityName)
	}
	for _, e := range logs {
		if e.Details.EntityName == "Produto 000" {
			t.Errorf("entrada mais antiga deveria ter sido descartada")
		}
	}
}

func TestDeleteShopWithActiveUsers(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	s := addShop(t, c, admin.ID, "Loja Central")

	u, err := user.NewUser("joao", "João Cossa", "", user.RoleManager, s.ID, []user.Permission{user.PermissionSales})
	if err != nil {
		t.Fatalf("erro ao construir usuário: %v", err)
	}
	created, err := c.AddUser(ctx, admin.ID, u, "segredo1")
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}

	if err := c.DeleteShop(ctx, admin.ID, s.ID); err != state.ErrShopHasUsers {
		t.Fatalf("esperado ErrShopHasUsers, obtido %v", err)
	}
	if _, err := c.ShopByID(s.ID); err != nil {
		t.Errorf("loja rejeitada para remoção deveria continuar existindo")
	}

	// Com o usuário desativado, a remoção passa a ser aceita
	inactive := false
	if _, err := c.UpdateUser(ctx, admin.ID, created.ID, state.UserPatch{IsActive: &inactive}); err != nil {
		t.Fatalf("erro ao desativar usuário: %v", err)
	}
	if err := c.DeleteShop(ctx, admin.ID, s.ID); err != nil {
		t.Fatalf("remoção deveria ser aceita após desativar o usuário: %v", err)
	}
	if _, err := c.ShopByID(s.ID); err != state.ErrShopNotFound {
		t.Errorf("loja deveria ter sido removida")
	}
}

func TestDeleteMissingEntitiesDegrade(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	if err := c.DeleteProduct(ctx, admin.ID, "nao-existe"); err != nil {
		t.Errorf("remoção de produto inexistente deveria concluir sem erro, obtido %v", err)
	}

	logs := c.ActivityLog()
	if len(logs) != 1 || logs[0].Action != activity.ActionProductDelete {
		t.Fatalf("a tentativa deveria ser registrada no log")
	}
	// Sem nome capturado, a descrição degrada para o ID
	if logs[0].Details.EntityID != "nao-existe" || logs[0].Details.EntityName != "" {
		t.Errorf("entrada deveria usar o ID como rótulo de fallback")
	}
}

func TestAddUserDuplicateUsername(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	u, err := user.NewUser("admin", "Outro Admin", "", user.RoleManager, "", nil)
	if err != nil {
		t.Fatalf("erro ao construir usuário: %v", err)
	}
	if _, err := c.AddUser(ctx, admin.ID, u, "segredo1"); err != state.ErrUsernameTaken {
		t.Errorf("esperado ErrUsernameTaken, obtido %v", err)
	}
}

func TestUpdateProductClampsNegativeStock(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	s := addShop(t, c, admin.ID, "Loja Central")
	p := addProduct(t, c, admin.ID, "Café em Grão 1kg", 850, map[string]int{s.ID: 10}, 5)

	updated, err := c.UpdateProduct(ctx, admin.ID, p.ID, state.ProductPatch{
		Stock: map[string]int{s.ID: -7},
	})
	if err != nil {
		t.Fatalf("erro ao atualizar produto: %v", err)
	}
	if updated.StockAt(s.ID) != 0 {
		t.Errorf("estoque negativo deveria saturar em zero, obtido %d", updated.StockAt(s.ID))
	}
}

func TestChangePassword(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	if err := c.ChangePassword(ctx, admin.ID, "errada", "nova-senha"); err != state.ErrInvalidCredentials {
		t.Fatalf("senha atual incorreta deveria ser rejeitada, obtido %v", err)
	}
	if err := c.ChangePassword(ctx, admin.ID, "admin", "nova-senha"); err != nil {
		t.Fatalf("erro ao alterar senha: %v", err)
	}

	if _, err := c.Authenticate(ctx, "admin", "admin"); err != state.ErrInvalidCredentials {
		t.Errorf("senha antiga deveria deixar de valer")
	}
	if _, err := c.Authenticate(ctx, "admin", "nova-senha"); err != nil {
		t.Errorf("nova senha deveria valer: %v", err)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	c, err := state.New(store, logger.NewLogger())
	if err != nil {
		t.Fatalf("erro ao criar contêiner: %v", err)
	}
	if err := c.Bootstrap(ctx); err != nil {
		t.Fatalf("erro no bootstrap: %v", err)
	}
	admin, _ := c.UserByUsername("admin")

	s := addShop(t, c, admin.ID, "Loja Central")
	p := addProduct(t, c, admin.ID, "Arroz 5kg", 620, map[string]int{s.ID: 50}, 10)
	if _, err := c.RecordSale(ctx, admin.ID, p.ID, s.ID, 5, "", sale.PaymentCard); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}

	// Um segundo contêiner sobre o mesmo armazenamento enxerga o mesmo estado
	c2, err := state.New(store, logger.NewLogger())
	if err != nil {
		t.Fatalf("erro ao re-hidratar: %v", err)
	}
	after, err := c2.Product(p.ID)
	if err != nil {
		t.Fatalf("produto não sobreviveu à re-hidratação: %v", err)
	}
	if after.StockAt(s.ID) != 45 {
		t.Errorf("estoque esperado 45 após re-hidratação, obtido %d", after.StockAt(s.ID))
	}
	if len(c2.Sales()) != 1 {
		t.Errorf("venda deveria sobreviver à re-hidratação")
	}
	if got := len(c2.ActivityLog()); got != len(c.ActivityLog()) {
		t.Errorf("log de atividades deveria sobreviver à re-hidratação")
	}
}

// TestCoffeeLifecycle percorre o cenário completo: cadastro de lojas e
// produto, venda, transferência, despesa aprovada e painel coerente.
func TestCoffeeLifecycle(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	admin, err := c.Authenticate(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("erro no login: %v", err)
	}

	central := addShop(t, c, admin.ID, "Maputo Central")
	filial := addShop(t, c, admin.ID, "Matola Filial")
	coffee := addProduct(t, c, admin.ID, "Café em Grão 1kg", 850, map[string]int{central.ID: 40, filial.ID: 10}, 15)

	// Venda de 4 unidades na loja central
	sold, err := c.RecordSale(ctx, admin.ID, coffee.ID, central.ID, 4, "Cafetaria Sol", sale.PaymentMobile)
	if err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}
	if sold.TotalAmount != 3400 {
		t.Errorf("valor total esperado 3400, obtido %.2f", sold.TotalAmount)
	}

	// Reposição da filial a partir da central
	if _, err := c.TransferStock(ctx, admin.ID, coffee.ID, central.ID, filial.ID, 6, ""); err != nil {
		t.Fatalf("erro na transferência: %v", err)
	}

	// Despesa aprovada contra a central
	exp, err := c.RecordExpense(ctx, admin.ID, "Manutenção do moinho", 400, central.ID, "Manutenção", "")
	if err != nil {
		t.Fatalf("erro ao registrar despesa: %v", err)
	}
	approved, err := c.ApproveExpense(ctx, admin.ID, exp.ID)
	if err != nil {
		t.Fatalf("erro ao aprovar despesa: %v", err)
	}
	if !approved.Approved {
		t.Errorf("despesa deveria estar aprovada")
	}

	after, _ := c.Product(coffee.ID)
	if after.StockAt(central.ID) != 30 || after.StockAt(filial.ID) != 16 {
		t.Errorf("estoques esperados 30/16, obtidos %d/%d", after.StockAt(central.ID), after.StockAt(filial.ID))
	}

	stats := c.Dashboard(admin)
	if stats.TodaySales != 3400 {
		t.Errorf("vendas de hoje esperadas 3400, obtido %.2f", stats.TodaySales)
	}
	if stats.TodayExpenses != 400 {
		t.Errorf("despesas de hoje esperadas 400, obtido %.2f", stats.TodayExpenses)
	}
	if stats.StockValue != float64(after.TotalStock())*850 {
		t.Errorf("valor de estoque incoerente com o catálogo")
	}
	if len(stats.TopProducts) != 1 || stats.TopProducts[0].ProductID != coffee.ID {
		t.Errorf("café deveria liderar os produtos mais vendidos")
	}
}
