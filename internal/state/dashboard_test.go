package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/sale"
)

func TestDashboardSalesTrend(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	s := addShop(t, c, admin.ID, "Loja Central")
	p := addProduct(t, c, admin.ID, "Arroz 5kg", 100, map[string]int{s.ID: 100}, 10)

	if _, err := c.RecordSale(ctx, admin.ID, p.ID, s.ID, 2, "", sale.PaymentCash); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}
	if _, err := c.RecordSale(ctx, admin.ID, p.ID, s.ID, 3, "", sale.PaymentCard); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}

	stats := c.Dashboard(admin)

	if len(stats.SalesTrend) != 7 {
		t.Fatalf("série deveria ter exatamente 7 pontos, obtidos %d", len(stats.SalesTrend))
	}

	// Do mais antigo para o mais recente: o último ponto é o dia de hoje
	now := time.Now()
	for i, point := range stats.SalesTrend {
		wantLabel := now.AddDate(0, 0, i-6).Format("Jan 2")
		if point.Label != wantLabel {
			t.Errorf("ponto %d: rótulo esperado %q, obtido %q", i, wantLabel, point.Label)
		}
	}

	var sum float64
	for _, point := range stats.SalesTrend {
		sum += point.Total
	}
	if sum != 500 {
		t.Errorf("a série deveria somar o total da janela (500), obtido %.2f", sum)
	}
	today := stats.SalesTrend[6]
	if today.Total != 500 || today.Count != 2 {
		t.Errorf("ponto de hoje esperado 500/2, obtido %.2f/%d", today.Total, today.Count)
	}
}

func TestDashboardProfitMarginZeroRevenue(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	s := addShop(t, c, admin.ID, "Loja Central")
	if _, err := c.RecordExpense(ctx, admin.ID, "Renda do espaço", 5000, s.ID, "Fixas", ""); err != nil {
		t.Fatalf("erro ao registrar despesa: %v", err)
	}

	stats := c.Dashboard(admin)
	if stats.MonthlyRevenue != 0 {
		t.Fatalf("sem vendas a receita mensal deveria ser 0")
	}
	if stats.ProfitMargin != 0 {
		t.Errorf("margem deveria ser 0 com receita zero, obtido %.2f", stats.ProfitMargin)
	}
	if stats.MonthlyExpenses != 5000 {
		t.Errorf("despesas mensais esperadas 5000, obtido %.2f", stats.MonthlyExpenses)
	}
}

func TestDashboardLowStockAndCounts(t *testing.T) {
	c, admin := newTestContainer(t)

	s := addShop(t, c, admin.ID, "Loja Central")
	addProduct(t, c, admin.ID, "Abaixo do mínimo", 10, map[string]int{s.ID: 4}, 5)
	addProduct(t, c, admin.ID, "Exatamente no mínimo", 10, map[string]int{s.ID: 5}, 5)
	addProduct(t, c, admin.ID, "Acima do mínimo", 10, map[string]int{s.ID: 9}, 5)

	stats := c.Dashboard(admin)
	if stats.TotalProducts != 3 {
		t.Errorf("catálogo esperado com 3 produtos, obtido %d", stats.TotalProducts)
	}
	// Limite estrito: igual ao mínimo não conta como baixo
	if stats.LowStockCount != 1 {
		t.Errorf("esperado 1 produto com estoque baixo, obtido %d", stats.LowStockCount)
	}
	if stats.StockValue != 180 {
		t.Errorf("valor de estoque esperado 180, obtido %.2f", stats.StockValue)
	}
	if stats.ActiveShops != 1 || stats.ActiveUsers != 1 {
		t.Errorf("contagens globais esperadas 1/1, obtidas %d/%d", stats.ActiveShops, stats.ActiveUsers)
	}
}

func TestDashboardTopProductsAggregateByName(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	s := addShop(t, c, admin.ID, "Loja Central")
	first := addProduct(t, c, admin.ID, "Café em Grão 1kg", 850, map[string]int{s.ID: 20}, 5)
	second := addProduct(t, c, admin.ID, "Café em Grão 1kg", 850, map[string]int{s.ID: 20}, 5)
	other := addProduct(t, c, admin.ID, "Arroz 5kg", 620, map[string]int{s.ID: 20}, 5)

	if _, err := c.RecordSale(ctx, admin.ID, first.ID, s.ID, 2, "", sale.PaymentCash); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}
	if _, err := c.RecordSale(ctx, admin.ID, second.ID, s.ID, 3, "", sale.PaymentCash); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}
	if _, err := c.RecordSale(ctx, admin.ID, other.ID, s.ID, 1, "", sale.PaymentCash); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}

	stats := c.Dashboard(admin)

	// Entradas de catálogo com o mesmo nome somam na mesma posição do ranking
	if len(stats.TopProducts) != 2 {
		t.Fatalf("ranking esperado com 2 posições, obtidas %d", len(stats.TopProducts))
	}
	top := stats.TopProducts[0]
	if top.ProductName != "Café em Grão 1kg" || top.QuantitySold != 5 || top.Revenue != 4250 {
		t.Errorf("posição líder incoerente: %+v", top)
	}
}

func TestDashboardVisibilityScoping(t *testing.T) {
	c, admin := newTestContainer(t)
	ctx := context.Background()

	mine := addShop(t, c, admin.ID, "Minha Loja")
	other := addShop(t, c, admin.ID, "Outra Loja")
	p := addProduct(t, c, admin.ID, "Arroz 5kg", 100, map[string]int{mine.ID: 50, other.ID: 50}, 10)

	if _, err := c.RecordSale(ctx, admin.ID, p.ID, mine.ID, 1, "", sale.PaymentCash); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}
	if _, err := c.RecordSale(ctx, admin.ID, p.ID, other.ID, 2, "", sale.PaymentCash); err != nil {
		t.Fatalf("erro ao registrar venda: %v", err)
	}

	// Gerente preso à própria loja enxerga apenas as vendas dela
	manager, err := c.AddUser(ctx, admin.ID, mustUser(t, "gerente", "Gerente", mine.ID), "segredo1")
	if err != nil {
		t.Fatalf("erro ao criar gerente: %v", err)
	}

	stats := c.Dashboard(manager)
	if stats.TodaySales != 100 {
		t.Errorf("gerente deveria ver apenas as vendas da própria loja, obtido %.2f", stats.TodaySales)
	}
	if len(stats.ShopPerformance) != 1 || stats.ShopPerformance[0].ShopID != mine.ID {
		t.Errorf("desempenho por loja deveria conter apenas a loja do gerente")
	}

	// O proprietário enxerga tudo
	ownerStats := c.Dashboard(admin)
	if ownerStats.TodaySales != 300 {
		t.Errorf("proprietário deveria ver todas as vendas, obtido %.2f", ownerStats.TodaySales)
	}
}
