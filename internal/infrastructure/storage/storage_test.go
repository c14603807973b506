package storage

import (
	"context"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDocumentVersioning(t *testing.T) {
	doc, err := NewDocument(payload{Name: "arroz", Count: 3})
	if err != nil {
		t.Fatalf("erro ao criar documento: %v", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		t.Errorf("documento deveria nascer na versão atual")
	}

	var out payload
	if err := doc.Decode(&out); err != nil {
		t.Fatalf("erro ao decodificar: %v", err)
	}
	if out.Name != "arroz" || out.Count != 3 {
		t.Errorf("conteúdo decodificado incoerente: %+v", out)
	}

	// Versões futuras são recusadas
	doc.SchemaVersion = SchemaVersion + 1
	if err := doc.Decode(&out); err == nil {
		t.Errorf("documento de versão futura deveria ser recusado")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestBoltStoreRoundTrip(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "retail.db"))
	if err != nil {
		t.Fatalf("erro ao abrir bolt: %v", err)
	}
	defer store.Close()

	testStoreRoundTrip(t, store)
}

func testStoreRoundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, KeyProducts); err != ErrKeyNotFound {
		t.Fatalf("chave ausente deveria produzir ErrKeyNotFound, obtido %v", err)
	}

	doc, err := NewDocument([]payload{{Name: "café", Count: 40}})
	if err != nil {
		t.Fatalf("erro ao criar documento: %v", err)
	}
	if err := store.Put(ctx, KeyProducts, doc); err != nil {
		t.Fatalf("erro ao gravar: %v", err)
	}

	got, err := store.Get(ctx, KeyProducts)
	if err != nil {
		t.Fatalf("erro ao ler: %v", err)
	}
	var out []payload
	if err := got.Decode(&out); err != nil {
		t.Fatalf("erro ao decodificar: %v", err)
	}
	if len(out) != 1 || out[0].Name != "café" || out[0].Count != 40 {
		t.Errorf("conteúdo lido incoerente: %+v", out)
	}

	// Regravação substitui o documento inteiro
	doc2, _ := NewDocument([]payload{})
	if err := store.Put(ctx, KeyProducts, doc2); err != nil {
		t.Fatalf("erro ao regravar: %v", err)
	}
	got2, _ := store.Get(ctx, KeyProducts)
	var out2 []payload
	if err := got2.Decode(&out2); err != nil {
		t.Fatalf("erro ao decodificar: %v", err)
	}
	if len(out2) != 0 {
		t.Errorf("regravação deveria substituir o conteúdo")
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("erro ao listar chaves: %v", err)
	}
	if len(keys) != 1 || keys[0] != KeyProducts {
		t.Errorf("chaves esperadas [%q], obtidas %v", KeyProducts, keys)
	}
}

func TestBoltStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retail.db")
	ctx := context.Background()

	store, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("erro ao abrir bolt: %v", err)
	}
	doc, _ := NewDocument("dark")
	if err := store.Put(ctx, KeyTheme, doc); err != nil {
		t.Fatalf("erro ao gravar: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("erro ao fechar: %v", err)
	}

	// O conteúdo sobrevive à reabertura do arquivo
	reopened, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("erro ao reabrir bolt: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, KeyTheme)
	if err != nil {
		t.Fatalf("erro ao ler após reabertura: %v", err)
	}
	var theme string
	if err := got.Decode(&theme); err != nil {
		t.Fatalf("erro ao decodificar: %v", err)
	}
	if theme != "dark" {
		t.Errorf("tema esperado \"dark\", obtido %q", theme)
	}
}
