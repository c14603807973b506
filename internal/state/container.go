package state

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/expense"
	"github.com/Qathar8/ums-portal/internal/domain/notification"
	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/domain/sale"
	"github.com/Qathar8/ums-portal/internal/domain/settings"
	"github.com/Qathar8/ums-portal/internal/domain/shop"
	"github.com/Qathar8/ums-portal/internal/domain/transfer"
	"github.com/Qathar8/ums-portal/internal/domain/user"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
	"github.com/Qathar8/ums-portal/pkg/logger"

	"sync"
)

// Temas de interface persistidos
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Container é o dono único do estado da aplicação: mantém todas as coleções
// de entidades em memória e é o único escritor do armazenamento persistente.
// É construído uma vez na partida do processo e injetado nos controllers.
//
// Toda operação de mutação executa sob o mutex, do início ao fim: leitores
// nunca observam estados intermediários (por exemplo, apenas um dos dois
// lados de uma transferência de estoque aplicado).
type Container struct {
	mu    sync.Mutex
	store storage.Store
	log   logger.Logger

	lastID int64

	users         []user.User
	shops         []shop.Shop
	products      []product.Product
	sales         []sale.Sale
	expenses      []expense.Expense
	transfers     []transfer.StockTransfer
	notifications []notification.Notification
	activities    []activity.Entry // mais recente primeiro
	settings      settings.Settings
	theme         string
}

// New hidrata o contêiner a partir do armazenamento. Coleções ausentes
// iniciam vazias (ou com os padrões, no caso das configurações); documentos
// corrompidos ou de versão futura são um erro explícito de partida.
func New(store storage.Store, log logger.Logger) (*Container, error) {
	c := &Container{
		store:    store,
		log:      log,
		settings: settings.Default(),
		theme:    ThemeLight,
	}

	if err := c.hydrate(context.Background()); err != nil {
		return nil, err
	}

	c.seedLastID()
	return c, nil
}

// hydrate carrega cada coleção persistida para a memória
func (c *Container) hydrate(ctx context.Context) error {
	targets := []struct {
		key    string
		target interface{}
	}{
		{storage.KeyUsers, &c.users},
		{storage.KeyShops, &c.shops},
		{storage.KeyProducts, &c.products},
		{storage.KeySales, &c.sales},
		{storage.KeyExpenses, &c.expenses},
		{storage.KeyTransfers, &c.transfers},
		{storage.KeySettings, &c.settings},
		{storage.KeyNotifications, &c.notifications},
		{storage.KeyActivityLogs, &c.activities},
		{storage.KeyTheme, &c.theme},
	}

	for _, t := range targets {
		doc, err := c.store.Get(ctx, t.key)
		if err != nil {
			if errors.Is(err, storage.ErrKeyNotFound) {
				continue
			}
			return fmt.Errorf("falha ao hidratar coleção %q: %w", t.key, err)
		}
		if err := doc.Decode(t.target); err != nil {
			return fmt.Errorf("falha ao hidratar coleção %q: %w", t.key, err)
		}
	}

	c.log.Info("Estado hidratado do armazenamento",
		"users", len(c.users),
		"shops", len(c.shops),
		"products", len(c.products),
		"sales", len(c.sales),
	)
	return nil
}

// seedLastID garante monotonicidade dos IDs mesmo após reinício com relógio
// atrasado: parte do maior ID numérico já emitido.
func (c *Container) seedLastID() {
	consider := func(id string) {
		if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > c.lastID {
			c.lastID = n
		}
	}

	for _, u := range c.users {
		consider(u.ID)
	}
	for _, s := range c.shops {
		consider(s.ID)
	}
	for _, p := range c.products {
		consider(p.ID)
	}
	for _, s := range c.sales {
		consider(s.ID)
	}
	for _, e := range c.expenses {
		consider(e.ID)
	}
	for _, t := range c.transfers {
		consider(t.ID)
	}
	for _, n := range c.notifications {
		consider(n.ID)
	}
	for _, a := range c.activities {
		consider(a.ID)
	}
}

// nextIDLocked emite um token único e crescente por entidade criada, baseado
// no relógio em milissegundos, com avanço forçado em caso de colisão.
// Deve ser chamado sob o mutex.
func (c *Container) nextIDLocked() string {
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return strconv.FormatInt(id, 10)
}

// persistLocked grava o estado serializado das coleções indicadas. Deve ser
// chamado sob o mutex, após as mutações em memória.
func (c *Container) persistLocked(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		var data interface{}
		switch key {
		case storage.KeyUsers:
			data = c.users
		case storage.KeyShops:
			data = c.shops
		case storage.KeyProducts:
			data = c.products
		case storage.KeySales:
			data = c.sales
		case storage.KeyExpenses:
			data = c.expenses
		case storage.KeyTransfers:
			data = c.transfers
		case storage.KeySettings:
			data = c.settings
		case storage.KeyNotifications:
			data = c.notifications
		case storage.KeyActivityLogs:
			data = c.activities
		case storage.KeyTheme:
			data = c.theme
		default:
			return fmt.Errorf("chave de coleção desconhecida: %s", key)
		}

		doc, err := storage.NewDocument(data)
		if err != nil {
			return err
		}
		if err := c.store.Put(ctx, key, doc); err != nil {
			return fmt.Errorf("falha ao persistir coleção %q: %w", key, err)
		}
	}
	return nil
}

// appendActivityLocked registra uma entrada no log de atividades em nome do
// ator, mantendo no máximo activity.MaxEntries entradas (mais recente
// primeiro). Deve ser chamado sob o mutex; o chamador persiste a coleção.
func (c *Container) appendActivityLocked(ctx context.Context, actor *user.User, action activity.Action, details activity.Details, shopID string) {
	if actor == nil {
		return
	}
	if shopID == "" {
		shopID = actor.ShopID
	}

	entry := activity.Entry{
		ID:        c.nextIDLocked(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
		ShopID:    shopID,
		IPAddress: clientIP(ctx),
	}

	entries := make([]activity.Entry, 0, len(c.activities)+1)
	entries = append(entries, entry)
	if len(c.activities) >= activity.MaxEntries {
		entries = append(entries, c.activities[:activity.MaxEntries-1]...)
	} else {
		entries = append(entries, c.activities...)
	}
	c.activities = entries
}

// clientIPKey é a chave de contexto para o endereço do cliente
type clientIPKey struct{}

// WithClientIP anota o contexto com o endereço do cliente que originou a
// requisição, registrado nas entradas do log de atividades
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// clientIP extrai o endereço do cliente do contexto, se presente
func clientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// ActivityLog retorna uma cópia do log de atividades, mais recente primeiro
func (c *Container) ActivityLog() []activity.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]activity.Entry(nil), c.activities...)
}
