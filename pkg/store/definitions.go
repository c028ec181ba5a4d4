package store

import (
	"context"
	"fmt"
	"strings"
)

// Kind is the type of a named definition.
type Kind string

const (
	// KindExpression values are composite expressions.
	KindExpression Kind = "re"
	// KindCharset values are literal charsets.
	KindCharset Kind = "cc"
)

// ParseKind validates a definition type.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindExpression, KindCharset:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Definition is a named generator stored in its own section.
type Definition struct {
	Name  string
	Kind  Kind
	Value string
}

// Definitions manages named definitions on top of a Store.
type Definitions struct {
	store Store
}

// NewDefinitions wraps s.
func NewDefinitions(s Store) *Definitions {
	return &Definitions{store: s}
}

// Add creates a definition. Existing names are rejected.
func (d *Definitions) Add(ctx context.Context, kind Kind, name, value string) error {
	if err := validate(kind, name); err != nil {
		return err
	}

	exists, err := d.store.HasSection(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDefinitionExists, name)
	}
	return d.write(ctx, kind, name, value)
}

// Update replaces the type and value of an existing definition.
func (d *Definitions) Update(ctx context.Context, kind Kind, name, value string) error {
	if err := validate(kind, name); err != nil {
		return err
	}
	if err := d.mustExist(ctx, name); err != nil {
		return err
	}
	return d.write(ctx, kind, name, value)
}

// Remove deletes a definition.
func (d *Definitions) Remove(ctx context.Context, name string) error {
	if name == SettingsSection {
		return fmt.Errorf("%w: %s", ErrReservedName, name)
	}
	if err := d.mustExist(ctx, name); err != nil {
		return err
	}
	return d.store.RemoveSection(ctx, name)
}

// Lookup returns the named definition as stored, without validating its type.
func (d *Definitions) Lookup(ctx context.Context, name string) (Definition, error) {
	if name == SettingsSection {
		return Definition{}, fmt.Errorf("%w: %s", ErrReservedName, name)
	}
	if err := d.mustExist(ctx, name); err != nil {
		return Definition{}, err
	}

	kind, err := GetOr(ctx, d.store, name, KeyType, "")
	if err != nil {
		return Definition{}, err
	}
	value, err := GetOr(ctx, d.store, name, KeyValue, "")
	if err != nil {
		return Definition{}, err
	}
	return Definition{Name: name, Kind: Kind(kind), Value: value}, nil
}

// List returns every definition sorted by name.
func (d *Definitions) List(ctx context.Context) ([]Definition, error) {
	sections, err := d.store.ListSections(ctx)
	if err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(sections))
	for _, name := range sections {
		if name == SettingsSection {
			continue
		}
		def, err := d.Lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (d *Definitions) mustExist(ctx context.Context, name string) error {
	exists, err := d.store.HasSection(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrDefinitionNotFound, name)
	}
	return nil
}

func (d *Definitions) write(ctx context.Context, kind Kind, name, value string) error {
	if err := d.store.Set(ctx, name, KeyType, string(kind)); err != nil {
		return err
	}
	return d.store.Set(ctx, name, KeyValue, value)
}

func validate(kind Kind, name string) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	if name == SettingsSection {
		return fmt.Errorf("%w: %s", ErrReservedName, name)
	}
	if name == "" || strings.ContainsAny(name, " \t\r\n$") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
