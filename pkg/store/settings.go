package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Settings updates the global length bounds.
type Settings struct {
	store Store
}

// NewSettings wraps s.
func NewSettings(s Store) *Settings {
	return &Settings{store: s}
}

// Apply evaluates an assignment such as "min_length=+ 5" or "max_length=64"
// against the current value, stores the result and returns it.
// Supported operators are + - * and / (integer division).
func (s *Settings) Apply(ctx context.Context, assignment string) (string, int, error) {
	key, rhs, ok := strings.Cut(assignment, "=")
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidAssignment, assignment)
	}
	key = strings.TrimSpace(key)

	var def int
	switch key {
	case KeyMinLength:
		def = DefaultMinLength
	case KeyMaxLength:
		def = DefaultMaxLength
	default:
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}

	current, err := s.current(ctx, key, def)
	if err != nil {
		return "", 0, err
	}

	value, err := applyOperation(current, strings.Fields(rhs))
	if err != nil {
		return "", 0, err
	}

	if err := s.store.Set(ctx, SettingsSection, key, strconv.Itoa(value)); err != nil {
		return "", 0, err
	}
	return key, value, nil
}

// Bounds returns the random-length bounds, falling back to the defaults for
// missing or non-numeric values.
func (s *Settings) Bounds(ctx context.Context) (int, int, error) {
	minLen, err := s.current(ctx, KeyMinLength, DefaultMinLength)
	if err != nil {
		return 0, 0, err
	}
	maxLen, err := s.current(ctx, KeyMaxLength, DefaultMaxLength)
	if err != nil {
		return 0, 0, err
	}
	return minLen, maxLen, nil
}

func (s *Settings) current(ctx context.Context, key string, def int) (int, error) {
	raw, err := GetOr(ctx, s.store, SettingsSection, key, "")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def, nil
	}
	return n, nil
}

func applyOperation(value int, fields []string) (int, error) {
	var op, operand string
	switch len(fields) {
	case 1:
		// "op5" or a bare number
		f := fields[0]
		if f != "" && strings.ContainsRune("+-*/", rune(f[0])) && len(f) > 1 {
			op, operand = f[:1], f[1:]
		} else {
			op, operand = "=", f
		}
	case 2:
		op, operand = fields[0], fields[1]
	default:
		return 0, fmt.Errorf("%w: expected an operator and an operand", ErrInvalidAssignment)
	}

	n, err := strconv.Atoi(operand)
	if err != nil {
		return 0, fmt.Errorf("%w: operand %q is not an integer", ErrInvalidAssignment, operand)
	}

	switch op {
	case "=":
		return n, nil
	case "+":
		return value + n, nil
	case "-":
		return value - n, nil
	case "*":
		return value * n, nil
	case "/":
		if n == 0 {
			return 0, ErrDivisionByZero
		}
		return value / n, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperation, op)
	}
}
