package state

import (
	"context"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/settings"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// SettingsPatch descreve uma atualização parcial das configurações do
// negócio: apenas os campos não nulos são aplicados
type SettingsPatch struct {
	BusinessName      *string
	Currency          *string
	CurrencySymbol    *string
	VATRate           *float64
	LowStockThreshold *int
	Timezone          *string
	Language          *string
	BusinessAddress   *string
	BusinessPhone     *string
	BusinessEmail     *string
}

// UpdateSettings aplica uma atualização parcial às configurações do negócio
func (c *Container) UpdateSettings(ctx context.Context, actorID string, patch SettingsPatch) (settings.Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return settings.Settings{}, ErrUserNotFound
	}

	oldSettings := c.settings
	oldActivities := c.activities

	next := c.settings
	if patch.BusinessName != nil {
		next.BusinessName = *patch.BusinessName
	}
	if patch.Currency != nil {
		next.Currency = *patch.Currency
	}
	if patch.CurrencySymbol != nil {
		next.CurrencySymbol = *patch.CurrencySymbol
	}
	if patch.VATRate != nil {
		next.VATRate = *patch.VATRate
	}
	if patch.LowStockThreshold != nil {
		next.LowStockThreshold = *patch.LowStockThreshold
	}
	if patch.Timezone != nil {
		next.Timezone = *patch.Timezone
	}
	if patch.Language != nil {
		next.Language = *patch.Language
	}
	if patch.BusinessAddress != nil {
		next.BusinessAddress = *patch.BusinessAddress
	}
	if patch.BusinessPhone != nil {
		next.BusinessPhone = *patch.BusinessPhone
	}
	if patch.BusinessEmail != nil {
		next.BusinessEmail = *patch.BusinessEmail
	}
	c.settings = next

	c.appendActivityLocked(ctx, actor, activity.ActionSettingsUpdate, activity.Details{}, "")

	if err := c.persistLocked(ctx, storage.KeySettings, storage.KeyActivityLogs); err != nil {
		c.settings = oldSettings
		c.activities = oldActivities
		return settings.Settings{}, err
	}

	c.log.Info("Configurações atualizadas", "business", c.settings.BusinessName)
	return c.settings, nil
}

// ToggleTheme alterna o tema de interface entre claro e escuro e persiste a
// escolha
func (c *Container) ToggleTheme(ctx context.Context, actorID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return "", ErrUserNotFound
	}

	oldTheme := c.theme
	oldActivities := c.activities

	if c.theme == ThemeDark {
		c.theme = ThemeLight
	} else {
		c.theme = ThemeDark
	}

	c.appendActivityLocked(ctx, actor, activity.ActionThemeChange, activity.Details{
		Theme: c.theme,
	}, "")

	if err := c.persistLocked(ctx, storage.KeyTheme, storage.KeyActivityLogs); err != nil {
		c.theme = oldTheme
		c.activities = oldActivities
		return "", err
	}
	return c.theme, nil
}
