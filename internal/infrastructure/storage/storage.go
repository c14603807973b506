package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// SchemaVersion é a versão atual do formato dos documentos persistidos.
// Todo documento gravado carrega esta versão; o carregador recusa versões
// mais novas e atualiza versões mais antigas (ver cmd/migration).
const SchemaVersion = 1

// Chaves estáveis das coleções persistidas, uma por coleção lógica
const (
	KeyUsers         = "users"
	KeyShops         = "shops"
	KeyProducts      = "products"
	KeySales         = "sales"
	KeyExpenses      = "expenses"
	KeyTransfers     = "stockTransfers"
	KeySettings      = "settings"
	KeyNotifications = "notifications"
	KeyActivityLogs  = "activityLogs"
	KeyTheme         = "theme"
)

// AllKeys lista todas as chaves de coleção conhecidas, na ordem de hidratação
var AllKeys = []string{
	KeyUsers,
	KeyShops,
	KeyProducts,
	KeySales,
	KeyExpenses,
	KeyTransfers,
	KeySettings,
	KeyNotifications,
	KeyActivityLogs,
	KeyTheme,
}

// Erros específicos do armazenamento
var (
	ErrKeyNotFound   = errors.New("chave não encontrada no armazenamento")
	ErrVersionTooNew = errors.New("versão do documento é mais recente que a suportada")
)

// Document é o envelope versionado gravado para cada coleção: a versão do
// esquema, o instante da última gravação e o JSON da coleção em si.
type Document struct {
	SchemaVersion int             `json:"schema_version"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Data          json.RawMessage `json:"data"`
}

// NewDocument serializa o valor fornecido em um envelope na versão atual
func NewDocument(data interface{}) (*Document, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar documento: %w", err)
	}
	return &Document{
		SchemaVersion: SchemaVersion,
		UpdatedAt:     time.Now(),
		Data:          raw,
	}, nil
}

// Decode desserializa o conteúdo do envelope no destino fornecido.
// Documentos de versões futuras são recusados com ErrVersionTooNew.
func (d *Document) Decode(target interface{}) error {
	if d.SchemaVersion > SchemaVersion {
		return fmt.Errorf("%w: documento na versão %d, suportada até %d", ErrVersionTooNew, d.SchemaVersion, SchemaVersion)
	}
	if err := json.Unmarshal(d.Data, target); err != nil {
		return fmt.Errorf("falha ao desserializar documento: %w", err)
	}
	return nil
}

// Store é a interface do armazenamento chave-valor persistente: um documento
// JSON versionado por coleção lógica, sob chaves estáveis.
type Store interface {
	Get(ctx context.Context, key string) (*Document, error)
	Put(ctx context.Context, key string, doc *Document) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// NewStoreFromEnv cria o Store configurado pela variável STORE_DRIVER
// (bolt, postgres ou memory; padrão bolt)
func NewStoreFromEnv() (Store, error) {
	driver := getEnv("STORE_DRIVER", "bolt")
	switch driver {
	case "bolt":
		return NewBoltStore(getEnv("BOLT_PATH", "data/retail.db"))
	case "postgres":
		return NewPostgresStore(context.Background())
	case "memory":
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", driver)
}

// getEnv retorna o valor da variável de ambiente ou o padrão fornecido
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
