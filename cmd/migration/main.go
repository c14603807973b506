package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Preparar o esquema do backend PostgreSQL, quando selecionado
	if os.Getenv("STORE_DRIVER") == "postgres" {
		if err := storage.RunPostgresMigrations(); err != nil {
			log.Fatalf("Erro ao preparar esquema PostgreSQL: %v", err)
		}
	}

	store, err := storage.NewStoreFromEnv()
	if err != nil {
		log.Fatalf("Erro ao abrir armazenamento: %v", err)
	}
	defer store.Close()

	// Atualizar os documentos persistidos para a versão de esquema atual
	if err := upgradeDocuments(store); err != nil {
		log.Fatalf("Erro ao atualizar documentos: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}

// upgradeDocuments regrava na versão de esquema atual todo documento
// persistido em versão anterior. Documentos de versões futuras interrompem a
// migração: indicam um binário mais antigo que os dados.
func upgradeDocuments(store storage.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, key := range storage.AllKeys {
		doc, err := store.Get(ctx, key)
		if err != nil {
			if errors.Is(err, storage.ErrKeyNotFound) {
				continue
			}
			return fmt.Errorf("erro ao ler coleção %q: %w", key, err)
		}

		if doc.SchemaVersion > storage.SchemaVersion {
			return fmt.Errorf("coleção %q: %w", key, storage.ErrVersionTooNew)
		}
		if doc.SchemaVersion == storage.SchemaVersion {
			continue
		}

		// Passos de atualização por versão entram aqui conforme o esquema
		// evolui; na versão 1 basta regravar o envelope.
		upgraded := &storage.Document{
			SchemaVersion: storage.SchemaVersion,
			UpdatedAt:     time.Now(),
			Data:          doc.Data,
		}
		if err := store.Put(ctx, key, upgraded); err != nil {
			return fmt.Errorf("erro ao regravar coleção %q: %w", key, err)
		}

		log.Printf("Coleção %q atualizada da versão %d para %d", key, doc.SchemaVersion, storage.SchemaVersion)
	}
	return nil
}
