// Package prefs is a flat key-value store for reading preferences.
//
// Values are JSON encoded per key and handed to a Backend, so the same
// typed accessors work over memory, a JSON file, or SQLite.
//
// # Usage
//
//	backend, err := prefs.OpenFile(path)
//	store := prefs.New(backend)
//	size := store.Int("font_size", 18)
package prefs

import (
	"encoding/json"
	"fmt"
	"log"
)

// Backend persists raw values by key. Save fully overwrites the key.
type Backend interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, raw []byte) error
}

type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// StringSet returns the stored set, or ok=false when the key is absent or
// its value can't be decoded.
func (s *Store) StringSet(key string) ([]string, bool) {
	var values []string
	if !s.get(key, &values) {
		return nil, false
	}
	return values, true
}

func (s *Store) PutStringSet(key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	return s.put(key, values)
}

func (s *Store) String(key, def string) string {
	var value string
	if !s.get(key, &value) {
		return def
	}
	return value
}

func (s *Store) PutString(key, value string) error {
	return s.put(key, value)
}

func (s *Store) Int(key string, def int) int {
	var value int
	if !s.get(key, &value) {
		return def
	}
	return value
}

func (s *Store) PutInt(key string, value int) error {
	return s.put(key, value)
}

func (s *Store) get(key string, dst any) bool {
	raw, ok, err := s.backend.Load(key)
	if err != nil {
		log.Printf("prefs: load %q: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("prefs: ignoring malformed value for %q: %v", key, err)
		return false
	}
	return true
}

func (s *Store) put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.backend.Save(key, raw); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
