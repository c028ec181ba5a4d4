package store

import "context"

// Section and key names shared by every backend.
const (
	SettingsSection = "Settings"
	KeyMinLength    = "min_length"
	KeyMaxLength    = "max_length"
	KeyType         = "type"
	KeyValue        = "value"
)

// Default length bounds written to a fresh store.
const (
	DefaultMinLength = 1
	DefaultMaxLength = 32767
)

// Store is a sectioned string key/value store.
type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, section, key string) (string, bool, error)
	Set(ctx context.Context, section, key, value string) error
	HasSection(ctx context.Context, section string) (bool, error)
	RemoveSection(ctx context.Context, section string) error
	// ListSections returns section names sorted alphabetically.
	ListSections(ctx context.Context) ([]string, error)
}

// GetOr returns the stored value or def when the key is missing.
func GetOr(ctx context.Context, s Store, section, key, def string) (string, error) {
	v, ok, err := s.Get(ctx, section, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}
