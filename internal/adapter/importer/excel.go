package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/xuri/excelize/v2"
)

// DefaultMinStock é o estoque mínimo atribuído a linhas importadas sem a
// coluna "Min Stock"
const DefaultMinStock = 10

var (
	ErrNoSheet       = errors.New("planilha não contém nenhuma aba")
	ErrMissingHeader = errors.New("planilha não contém as colunas obrigatórias Name e Price")
)

// Colunas fixas da planilha de produtos; o estoque por loja usa colunas
// dinâmicas "Stock_<NomeDaLoja>" com espaços trocados por sublinhado.
const (
	colName     = "Name"
	colCategory = "Category"
	colPrice    = "Price"
	colMinStock = "Min Stock"
	stockPrefix = "Stock_"
)

// stockColumn retorna o cabeçalho da coluna de estoque da loja
func stockColumn(shopName string) string {
	return stockPrefix + strings.ReplaceAll(shopName, " ", "_")
}

// ParseProducts lê uma planilha xlsx de produtos e retorna os produtos
// prontos para inserção. As colunas de estoque são resolvidas contra as
// lojas existentes; colunas de lojas desconhecidas são ignoradas.
func ParseProducts(r io.Reader, shops []shop.Shop) ([]*product.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	// Mapear cabeçalhos para índices de coluna
	header := make(map[string]int, len(rows[0]))
	for i, cell := range rows[0] {
		header[strings.TrimSpace(cell)] = i
	}
	nameIdx, hasName := header[colName]
	priceIdx, hasPrice := header[colPrice]
	if !hasName || !hasPrice {
		return nil, ErrMissingHeader
	}

	// Resolver colunas de estoque por loja
	shopColumns := make(map[string]int, len(shops))
	for _, s := range shops {
		if idx, ok := header[stockColumn(s.Name)]; ok {
			shopColumns[s.ID] = idx
		}
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	products := make([]*product.Product, 0, len(rows)-1)
	for n, row := range rows[1:] {
		name := cell(row, nameIdx)
		if name == "" {
			continue
		}

		price, err := strconv.ParseFloat(cell(row, priceIdx), 64)
		if err != nil {
			return nil, fmt.Errorf("linha %d: preço inválido: %w", n+2, err)
		}

		minStock := DefaultMinStock
		if idx, ok := header[colMinStock]; ok {
			if raw := cell(row, idx); raw != "" {
				minStock, err = strconv.Atoi(raw)
				if err != nil {
					return nil, fmt.Errorf("linha %d: estoque mínimo inválido: %w", n+2, err)
				}
			}
		}

		stock := make(map[string]int, len(shopColumns))
		for shopID, idx := range shopColumns {
			raw := cell(row, idx)
			if raw == "" {
				continue
			}
			qty, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("linha %d: quantidade de estoque inválida: %w", n+2, err)
			}
			stock[shopID] = qty
		}

		category := ""
		if idx, ok := header[colCategory]; ok {
			category = cell(row, idx)
		}

		p, err := product.NewProduct(name, category, price, stock, minStock, "", "")
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", n+2, err)
		}
		products = append(products, p)
	}

	return products, nil
}

// ExportProducts serializa o catálogo para uma planilha xlsx no mesmo
// formato aceito pela importação
func ExportProducts(w io.Writer, products []product.Product, shops []shop.Shop) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []string{colName, colCategory, colPrice, colMinStock}
	for _, s := range shops {
		headers = append(headers, stockColumn(s.Name))
	}

	for i, h := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, h); err != nil {
			return err
		}
	}

	for r, p := range products {
		values := []interface{}{p.Name, p.Category, p.Price, p.MinStock}
		for _, s := range shops {
			values = append(values, p.StockAt(s.ID))
		}
		for i, v := range values {
			cellRef, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
