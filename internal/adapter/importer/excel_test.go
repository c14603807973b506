package importer

import (
	"bytes"
	"testing"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/xuri/excelize/v2"
)

func testShops() []shop.Shop {
	return []shop.Shop{
		{ID: "1", Name: "Maputo Central", Location: "Maputo", IsActive: true, CreatedAt: time.Now()},
		{ID: "2", Name: "Matola Filial", Location: "Matola", IsActive: true, CreatedAt: time.Now()},
	}
}

// buildSheet monta uma planilha em memória com as linhas fornecidas
func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("erro ao montar planilha: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("erro ao montar planilha: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("erro ao serializar planilha: %v", err)
	}
	return &buf
}

func TestParseProducts(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"Name", "Category", "Price", "Min Stock", "Stock_Maputo_Central", "Stock_Matola_Filial"},
		{"Café em Grão 1kg", "Mercearia", 850, 15, 40, 25},
		{"Arroz 5kg", "Mercearia", 620, "", 120, ""},
	})

	products, err := ParseProducts(buf, testShops())
	if err != nil {
		t.Fatalf("erro ao importar: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("esperados 2 produtos, obtidos %d", len(products))
	}

	coffee := products[0]
	if coffee.Name != "Café em Grão 1kg" || coffee.Price != 850 || coffee.MinStock != 15 {
		t.Errorf("produto importado incoerente: %+v", coffee)
	}
	if coffee.StockAt("1") != 40 || coffee.StockAt("2") != 25 {
		t.Errorf("estoque por loja incoerente: %v", coffee.Stock)
	}

	// Estoque mínimo ausente assume o padrão; célula de estoque vazia é omitida
	rice := products[1]
	if rice.MinStock != DefaultMinStock {
		t.Errorf("estoque mínimo padrão esperado %d, obtido %d", DefaultMinStock, rice.MinStock)
	}
	if rice.StockAt("1") != 120 || rice.StockAt("2") != 0 {
		t.Errorf("estoque por loja incoerente: %v", rice.Stock)
	}
}

func TestParseProductsMissingHeader(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"Category", "Price"},
		{"Mercearia", 100},
	})

	if _, err := ParseProducts(buf, testShops()); err == nil {
		t.Errorf("planilha sem coluna Name deveria ser recusada")
	}
}

func TestParseProductsSkipsBlankRows(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"Name", "Price"},
		{"", ""},
		{"Sabão em Barra", 45},
	})

	products, err := ParseProducts(buf, testShops())
	if err != nil {
		t.Fatalf("erro ao importar: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Sabão em Barra" {
		t.Errorf("linhas sem nome deveriam ser ignoradas")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	shops := testShops()

	original, err := product.NewProduct("Óleo Alimentar 1L", "Mercearia", 210, map[string]int{"1": 70, "2": 45}, 20, "", "")
	if err != nil {
		t.Fatalf("erro ao construir produto: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportProducts(&buf, []product.Product{*original}, shops); err != nil {
		t.Fatalf("erro ao exportar: %v", err)
	}

	parsed, err := ParseProducts(&buf, shops)
	if err != nil {
		t.Fatalf("erro ao reimportar: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("esperado 1 produto, obtidos %d", len(parsed))
	}

	got := parsed[0]
	if got.Name != original.Name || got.Category != original.Category || got.Price != original.Price || got.MinStock != original.MinStock {
		t.Errorf("produto reimportado incoerente: %+v", got)
	}
	if got.StockAt("1") != 70 || got.StockAt("2") != 45 {
		t.Errorf("estoque reimportado incoerente: %v", got.Stock)
	}
}
