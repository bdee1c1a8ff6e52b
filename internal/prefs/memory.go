package prefs

import "bytes"

// Memory is an in-process Backend, used by tests and the "memory" store.
type Memory struct {
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Load(key string) ([]byte, bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(raw), true, nil
}

func (m *Memory) Save(key string, raw []byte) error {
	m.values[key] = bytes.Clone(raw)
	return nil
}

// Raw exposes a stored value for tests that inspect the wire format.
func (m *Memory) Raw(key string) (string, bool) {
	raw, ok := m.values[key]
	return string(raw), ok
}
