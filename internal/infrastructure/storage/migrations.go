package storage

import (
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunPostgresMigrations aplica as migrações de esquema do backend PostgreSQL
// (a tabela chave-documento). Os arquivos .sql vivem em migrations/.
func RunPostgresMigrations() error {
	sourceURL := fmt.Sprintf("file://%s", getEnv("MIGRATIONS_PATH", "migrations"))

	m, err := migrate.New(sourceURL, PostgresURLFromEnv())
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	log.Println("Migrações de esquema aplicadas com sucesso")
	return nil
}
