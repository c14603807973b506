package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketCollections é o bucket único onde os documentos de coleção residem
var bucketCollections = []byte("collections")

// BoltStore é a implementação padrão de Store: um arquivo bbolt local com um
// documento JSON versionado por coleção (o análogo do storage do navegador
// na aplicação original).
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore abre (ou cria) o arquivo de dados no caminho indicado
func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("falha ao criar diretório de dados: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir arquivo de dados: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCollections)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao preparar bucket de coleções: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get implementa Store.Get
func (s *BoltStore) Get(ctx context.Context, key string) (*Document, error) {
	var doc *Document

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketCollections).Get([]byte(key))
		if raw == nil {
			return ErrKeyNotFound
		}

		doc = &Document{}
		if err := json.Unmarshal(raw, doc); err != nil {
			return fmt.Errorf("falha ao ler documento %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Put implementa Store.Put
func (s *BoltStore) Put(ctx context.Context, key string, doc *Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("falha ao serializar documento %q: %w", key, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCollections).Put([]byte(key), raw)
	})
}

// Keys implementa Store.Keys
func (s *BoltStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCollections).ForEach(func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// Close implementa Store.Close
func (s *BoltStore) Close() error {
	return s.db.Close()
}
