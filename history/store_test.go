package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStoreFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store, err := LoadStoreFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Entries) != 0 {
		t.Errorf("expected empty store, got %v", store.Entries)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store, err := LoadStoreFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Save([]string{"ls -la", "pwd"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadStoreFrom(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(loaded.Entries) != 2 || loaded.Entries[0] != "ls -la" || loaded.Entries[1] != "pwd" {
		t.Errorf("expected [ls -la, pwd], got %v", loaded.Entries)
	}
}

func TestLoadStoreFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStoreFrom(path); err == nil {
		t.Error("expected an error for corrupt history file")
	}
}
