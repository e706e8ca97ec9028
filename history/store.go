package history

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store persists the history log between sessions.
type Store struct {
	path    string
	Entries []string `json:"entries"`
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gosh"), nil
}

// LoadStore reads saved history from the default location under
// ~/.config/gosh, creating the directory if needed.
func LoadStore() (*Store, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return LoadStoreFrom(filepath.Join(dir, "history.json"))
}

// LoadStoreFrom reads saved history from path. A missing file is not an
// error: it returns an empty store that Save will create.
func LoadStoreFrom(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// No history yet, return empty store
		return store, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, store); err != nil {
		return nil, err
	}

	return store, nil
}

// Save writes the given entries to disk.
func (s *Store) Save(entries []string) error {
	s.Entries = entries
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
