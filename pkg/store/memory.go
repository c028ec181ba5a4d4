package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryStore is an in-process Store. The zero value is not usable; call NewMemoryStore.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemoryStore returns a store seeded with the default Settings section.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: defaultData()}
}

func defaultData() map[string]map[string]string {
	return map[string]map[string]string{
		SettingsSection: {
			KeyMinLength: itoa(DefaultMinLength),
			KeyMaxLength: itoa(DefaultMaxLength),
		},
	}
}

func (m *MemoryStore) Get(_ context.Context, section, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[section][key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, section, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	setIn(m.data, section, key, value)
	return nil
}

func (m *MemoryStore) HasSection(_ context.Context, section string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[section]
	return ok, nil
}

func (m *MemoryStore) RemoveSection(_ context.Context, section string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, section)
	return nil
}

func (m *MemoryStore) ListSections(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.data)), nil
}

func setIn(data map[string]map[string]string, section, key, value string) {
	sec, ok := data[section]
	if !ok {
		sec = make(map[string]string)
		data[section] = sec
	}
	sec[key] = value
}
