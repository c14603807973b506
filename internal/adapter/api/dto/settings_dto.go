package dto

import (
	"github.com/Qathar8/ums-portal/internal/domain/settings"
	"github.com/Qathar8/ums-portal/internal/state"
)

// SettingsUpdateRequest representa uma atualização parcial das configurações
// do negócio
type SettingsUpdateRequest struct {
	BusinessName      *string  `json:"business_name"`
	Currency          *string  `json:"currency"`
	CurrencySymbol    *string  `json:"currency_symbol"`
	VATRate           *float64 `json:"vat_rate"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
	Timezone          *string  `json:"timezone"`
	Language          *string  `json:"language"`
	BusinessAddress   *string  `json:"business_address"`
	BusinessPhone     *string  `json:"business_phone"`
	BusinessEmail     *string  `json:"business_email"`
}

// SettingsResponse representa a resposta com as configurações do negócio
type SettingsResponse struct {
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

// ThemeResponse representa a resposta com o tema de interface atual
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ToSettingsResponse converte as configurações do domínio para DTO de resposta
func ToSettingsResponse(s settings.Settings) SettingsResponse {
	return SettingsResponse{
		BusinessName:      s.BusinessName,
		Currency:          s.Currency,
		CurrencySymbol:    s.CurrencySymbol,
		VATRate:           s.VATRate,
		LowStockThreshold: s.LowStockThreshold,
		Timezone:          s.Timezone,
		Language:          s.Language,
		BusinessAddress:   s.BusinessAddress,
		BusinessPhone:     s.BusinessPhone,
		BusinessEmail:     s.BusinessEmail,
	}
}

// ToSettingsPatch converte a requisição de atualização para o patch do contêiner
func (r SettingsUpdateRequest) ToSettingsPatch() state.SettingsPatch {
	return state.SettingsPatch{
		BusinessName:      r.BusinessName,
		Currency:          r.Currency,
		CurrencySymbol:    r.CurrencySymbol,
		VATRate:           r.VATRate,
		LowStockThreshold: r.LowStockThreshold,
		Timezone:          r.Timezone,
		Language:          r.Language,
		BusinessAddress:   r.BusinessAddress,
		BusinessPhone:     r.BusinessPhone,
		BusinessEmail:     r.BusinessEmail,
	}
}
