package state

import (
	"sort"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/user"
)

// DailySale é um ponto da série de vendas dos últimos dias
type DailySale struct {
	Label string  `json:"label"` // dia formatado, ex.: "Jan 2"
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ShopPerformance resume receita, despesas e lucro de uma loja
type ShopPerformance struct {
	ShopID   string  `json:"shop_id"`
	ShopName string  `json:"shop_name"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Sales    int     `json:"sales"`
}

// TopProduct resume o desempenho de venda de um produto
type TopProduct struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DashboardStats agrega os indicadores exibidos no painel. Vendas e despesas
// respeitam a visibilidade de loja do ator; o valor de estoque, a contagem de
// produtos e as contagens de usuários e lojas ativos são globais.
type DashboardStats struct {
	TodaySales      float64           `json:"today_sales"`
	TodayExpenses   float64           `json:"today_expenses"`
	TotalProducts   int               `json:"total_products"`
	LowStockCount   int               `json:"low_stock_count"`
	StockValue      float64           `json:"stock_value"`
	SalesTrend      []DailySale       `json:"sales_trend"`
	ShopPerformance []ShopPerformance `json:"shop_performance"`
	TopProducts     []TopProduct      `json:"top_products"`
	MonthlyRevenue  float64           `json:"monthly_revenue"`
	MonthlyExpenses float64           `json:"monthly_expenses"`
	ProfitMargin    float64           `json:"profit_margin"`
	ActiveUsers     int               `json:"active_users"`
	ActiveShops     int               `json:"active_shops"`
}

// sameDay verifica se dois instantes caem no mesmo dia do calendário local
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sameMonth verifica se dois instantes caem no mesmo mês do calendário local
func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// Dashboard calcula os indicadores do painel para o ator indicado
func (c *Container) Dashboard(actor *user.User) DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	stats := DashboardStats{
		TotalProducts: len(c.products),
		SalesTrend:    make([]DailySale, 0, 7),
	}

	// Catálogo e estoque são globais, independentes da loja do ator
	for i := range c.products {
		stats.StockValue += c.products[i].StockValue()
		if c.products[i].IsLowStock() {
			stats.LowStockCount++
		}
	}

	// Totais do dia e do mês corrente
	for _, s := range c.sales {
		if !actor.CanAccessShop(s.ShopID) {
			continue
		}
		if sameDay(s.Date, now) {
			stats.TodaySales += s.TotalAmount
		}
		if sameMonth(s.Date, now) {
			stats.MonthlyRevenue += s.TotalAmount
		}
	}
	for _, e := range c.expenses {
		if !actor.CanAccessShop(e.ShopID) {
			continue
		}
		if sameDay(e.Date, now) {
			stats.TodayExpenses += e.Amount
		}
		if sameMonth(e.Date, now) {
			stats.MonthlyExpenses += e.Amount
		}
	}
	if stats.MonthlyRevenue > 0 {
		stats.ProfitMargin = (stats.MonthlyRevenue - stats.MonthlyExpenses) / stats.MonthlyRevenue * 100
	}

	// Série dos últimos 7 dias, do mais antigo para o mais recente
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		point := DailySale{Label: day.Format("Jan 2")}
		for _, s := range c.sales {
			if actor.CanAccessShop(s.ShopID) && sameDay(s.Date, day) {
				point.Total += s.TotalAmount
				point.Count++
			}
		}
		stats.SalesTrend = append(stats.SalesTrend, point)
	}

	// Desempenho por loja visível
	for _, shp := range c.shops {
		if !shp.IsActive || !actor.CanAccessShop(shp.ID) {
			continue
		}
		perf := ShopPerformance{ShopID: shp.ID, ShopName: shp.Name}
		for _, s := range c.sales {
			if s.ShopID == shp.ID {
				perf.Revenue += s.TotalAmount
				perf.Sales++
			}
		}
		for _, e := range c.expenses {
			if e.ShopID == shp.ID {
				perf.Expenses += e.Amount
			}
		}
		perf.Profit = perf.Revenue - perf.Expenses
		stats.ShopPerformance = append(stats.ShopPerformance, perf)
	}

	// Cinco produtos de maior receita, agregados pelo nome do produto;
	// empates preservam a ordem da primeira venda
	byProduct := make(map[string]*TopProduct)
	order := make([]string, 0)
	for _, s := range c.sales {
		if !actor.CanAccessShop(s.ShopID) {
			continue
		}
		top, ok := byProduct[s.ProductName]
		if !ok {
			top = &TopProduct{ProductID: s.ProductID, ProductName: s.ProductName}
			byProduct[s.ProductName] = top
			order = append(order, s.ProductName)
		}
		top.QuantitySold += s.Quantity
		top.Revenue += s.TotalAmount
	}
	ranked := make([]TopProduct, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, *byProduct[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	stats.TopProducts = ranked

	// Contagens globais
	for i := range c.users {
		if c.users[i].IsActive {
			stats.ActiveUsers++
		}
	}
	for i := range c.shops {
		if c.shops[i].IsActive {
			stats.ActiveShops++
		}
	}
	return stats
}
