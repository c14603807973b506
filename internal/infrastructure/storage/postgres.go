package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore é a implementação de Store sobre PostgreSQL: uma tabela
// chave-documento, um registro por coleção lógica. O esquema é criado por
// cmd/migration (ver RunPostgresMigrations).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresURLFromEnv monta a URL de conexão a partir das variáveis de
// ambiente (DATABASE_URL tem precedência sobre as variáveis individuais)
func PostgresURLFromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "retail"),
		getEnv("DB_SSL_MODE", "disable"),
	)
}

// NewPostgresStore cria uma nova conexão com o banco e verifica que está
// acessível
func NewPostgresStore(ctx context.Context) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(PostgresURLFromEnv())
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao verificar conexão com o banco de dados: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Get implementa Store.Get
func (s *PostgresStore) Get(ctx context.Context, key string) (*Document, error) {
	doc := &Document{}

	err := s.pool.QueryRow(ctx,
		"SELECT schema_version, updated_at, data FROM collection_documents WHERE key = $1",
		key,
	).Scan(&doc.SchemaVersion, &doc.UpdatedAt, &doc.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("falha ao buscar documento %q: %w", key, err)
	}

	return doc, nil
}

// Put implementa Store.Put
func (s *PostgresStore) Put(ctx context.Context, key string, doc *Document) error {
	query := `
		INSERT INTO collection_documents (key, schema_version, updated_at, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET schema_version = EXCLUDED.schema_version,
		    updated_at = EXCLUDED.updated_at,
		    data = EXCLUDED.data
	`

	_, err := s.pool.Exec(ctx, query, key, doc.SchemaVersion, doc.UpdatedAt, doc.Data)
	if err != nil {
		return fmt.Errorf("falha ao gravar documento %q: %w", key, err)
	}

	return nil
}

// Keys implementa Store.Keys
func (s *PostgresStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, "SELECT key FROM collection_documents ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("falha ao listar chaves: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("falha ao ler chave: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return keys, nil
}

// Close implementa Store.Close
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
