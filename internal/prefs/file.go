package prefs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const appDir = "gita-tui"

// File keeps every key in a single JSON object on disk. Each Save replaces
// the whole file atomically.
type File struct {
	path   string
	values map[string]json.RawMessage
}

// DefaultPath returns name inside the user's config directory, creating the
// directory if needed.
func DefaultPath(name string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, appDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}

	f := &File{path: path, values: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	if err != nil {
		// No file yet = empty store
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		// Unreadable file = empty store; keep the old bytes for inspection
		log.Printf("prefs: parse %s: %v; starting empty", path, err)
		f.values = make(map[string]json.RawMessage)
		if err := os.Rename(path, path+".bad"); err != nil {
			log.Printf("prefs: move aside %s: %v", path, err)
		}
	}

	return f, nil
}

func (f *File) Load(key string) ([]byte, bool, error) {
	raw, ok := f.values[key]
	return raw, ok, nil
}

func (f *File) Save(key string, raw []byte) error {
	f.values[key] = json.RawMessage(raw)

	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+"*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpFile.Name(), f.path)
}
