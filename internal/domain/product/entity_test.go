package product

import "testing"

func TestNewProductClampsNegativeStock(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "Mercearia", 620, map[string]int{"a": -3, "b": 10}, 5, "", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if p.StockAt("a") != 0 {
		t.Errorf("estoque inicial negativo deveria saturar em zero, obtido %d", p.StockAt("a"))
	}
	if p.TotalStock() != 10 {
		t.Errorf("estoque total esperado 10, obtido %d", p.TotalStock())
	}
}

func TestNewProductValidation(t *testing.T) {
	if _, err := NewProduct("  ", "x", 10, nil, 0, "", ""); err != ErrEmptyName {
		t.Errorf("nome vazio deveria ser rejeitado, obtido %v", err)
	}
	if _, err := NewProduct("ok", "x", -1, nil, 0, "", ""); err != ErrInvalidPrice {
		t.Errorf("preço negativo deveria ser rejeitado, obtido %v", err)
	}
	if _, err := NewProduct("ok", "x", 1, nil, -1, "", ""); err != ErrInvalidMinStock {
		t.Errorf("mínimo negativo deveria ser rejeitado, obtido %v", err)
	}
}

func TestAdjustStockClamp(t *testing.T) {
	p, _ := NewProduct("Açúcar 2kg", "Mercearia", 180, map[string]int{"a": 5}, 5, "", "")

	p.AdjustStock("a", -3)
	if p.StockAt("a") != 2 {
		t.Errorf("esperado 2, obtido %d", p.StockAt("a"))
	}

	// Qualquer sequência de ajustes nunca deixa o estoque negativo
	p.AdjustStock("a", -100)
	if p.StockAt("a") != 0 {
		t.Errorf("estoque deveria saturar em zero, obtido %d", p.StockAt("a"))
	}

	// Loja nunca vista inicia do zero
	p.AdjustStock("b", 7)
	if p.StockAt("b") != 7 {
		t.Errorf("esperado 7, obtido %d", p.StockAt("b"))
	}
}

func TestIsLowStockStrict(t *testing.T) {
	p, _ := NewProduct("Café em Grão 1kg", "Mercearia", 850, map[string]int{"a": 5}, 5, "", "")
	if p.IsLowStock() {
		t.Errorf("estoque igual ao mínimo não é baixo")
	}

	p.AdjustStock("a", -1)
	if !p.IsLowStock() {
		t.Errorf("estoque abaixo do mínimo deveria ser baixo")
	}
}

func TestCloneIsolatesStockMap(t *testing.T) {
	p, _ := NewProduct("Sabão em Barra", "Higiene", 45, map[string]int{"a": 10}, 5, "", "")

	clone := p.Clone()
	clone.AdjustStock("a", -10)

	if p.StockAt("a") != 10 {
		t.Errorf("mutação no clone não deveria afetar o original")
	}
}
