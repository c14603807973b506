package settings

// Settings representa as configurações globais do negócio (singleton)
type Settings struct {
	BusinessName      string  `json:"business_name"`
	Currency          string  `json:"currency"`
	CurrencySymbol    string  `json:"currency_symbol"`
	VATRate           float64 `json:"vat_rate"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Timezone          string  `json:"timezone"`
	Language          string  `json:"language"`
	BusinessAddress   string  `json:"business_address,omitempty"`
	BusinessPhone     string  `json:"business_phone,omitempty"`
	BusinessEmail     string  `json:"business_email,omitempty"`
}

// Default retorna as configurações iniciais usadas quando nada foi persistido
func Default() Settings {
	return Settings{
		BusinessName:      "RetailPro",
		Currency:          "MZN",
		CurrencySymbol:    "MT",
		VATRate:           17.0,
		LowStockThreshold: 20,
		Timezone:          "Africa/Maputo",
		Language:          "en",
	}
}
