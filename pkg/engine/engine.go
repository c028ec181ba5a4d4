package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/rget/pkg/cache"
	"github.com/dmitrymomot/rget/pkg/charset"
	"github.com/dmitrymomot/rget/pkg/expr"
	"github.com/dmitrymomot/rget/pkg/generator"
	"github.com/dmitrymomot/rget/pkg/logger"
)

// Store is the read side of the settings and definitions store.
type Store interface {
	Get(ctx context.Context, section, key string) (string, bool, error)
	HasSection(ctx context.Context, section string) (bool, error)
}

const (
	settingsSection = "Settings"
	keyMinLength    = "min_length"
	keyMaxLength    = "max_length"
	keyType         = "type"
	keyValue        = "value"

	typeExpression = "re"
	typeCharset    = "cc"

	defaultMinLength = 1
	defaultMaxLength = 32767
	defaultCacheSize = 64
)

// Request describes one generation call.
type Request struct {
	// Mode is a mode tag, a bracketed expression or a $name reference.
	Mode string

	// Length fixes the length of every string when positive.
	Length int

	// RandomLength draws lengths from the store's bounds. Exclusive with Length.
	RandomLength bool

	// Count defaults to 1.
	Count int

	Case     charset.Case
	NoRepeat bool

	// Input is the custom charset; when set it wins over every other cc charset.
	Input string
}

func (r Request) validate() error {
	switch {
	case r.Mode == "":
		return fmt.Errorf("%w: mode is required", ErrInvalidRequest)
	case r.Length < 0:
		return fmt.Errorf("%w: negative length %d", ErrInvalidRequest, r.Length)
	case r.Count < 0:
		return fmt.Errorf("%w: negative count %d", ErrInvalidRequest, r.Count)
	case r.Length > 0 && r.RandomLength:
		return fmt.Errorf("%w: fixed and random length are mutually exclusive", ErrInvalidRequest)
	}
	return nil
}

func (r Request) input() *charset.Charset {
	if r.Input == "" {
		return nil
	}
	cs := charset.New(r.Input)
	return &cs
}

// Engine dispatches requests to the expression evaluator or the generators.
type Engine struct {
	store    Store
	log      *slog.Logger
	programs *cache.LRU[string, expr.Program]

	mu  sync.Mutex
	gen *generator.Generator
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	log       *slog.Logger
	src       rand.Source
	cacheSize int
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSource sets the random source, mainly for reproducible tests.
func WithSource(src rand.Source) Option {
	return func(o *engineOptions) { o.src = src }
}

// WithCacheSize sets how many compiled expressions are kept. Non-positive values are ignored.
func WithCacheSize(n int) Option {
	return func(o *engineOptions) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// New creates an engine reading settings and definitions from store.
// A nil store behaves as an empty one.
func New(store Store, opts ...Option) *Engine {
	o := &engineOptions{log: logger.Discard(), cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(o)
	}

	return &Engine{
		store:    store,
		log:      o.log.With(logger.Component("engine")),
		programs: cache.New[string, expr.Program](o.cacheSize),
		gen:      generator.New(o.src),
	}
}

// Compile parses text, serving repeated expressions from the cache.
func (e *Engine) Compile(text string) (expr.Program, error) {
	prog, hit, err := e.programs.GetOrLoad(text, func() (expr.Program, error) {
		return expr.Parse(text)
	})
	if err != nil {
		return nil, err
	}
	e.log.Debug("compiled expression", logger.Mode(text), logger.CacheHit(hit))
	return prog, nil
}

// Generate produces req.Count strings or an error.
func (e *Engine) Generate(ctx context.Context, req Request) ([]string, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if req.Count == 0 {
		req.Count = 1
	}

	var (
		out      []string
		err      error
		strategy string
	)
	switch mode := req.Mode; {
	case strings.HasPrefix(mode, "$"):
		strategy = "reference"
		out, err = e.reference(ctx, strings.TrimPrefix(mode, "$"), req)
	case isBracketed(mode):
		strategy = "expression"
		out, err = e.expression(ctx, mode, req)
	default:
		if m, ok := generator.ParseMode(mode); ok {
			strategy = "mode"
			out, err = e.bare(ctx, m, req)
		} else {
			strategy = "expression"
			out, err = e.expression(ctx, mode, req)
		}
	}

	if err != nil {
		e.log.DebugContext(ctx, "generation failed",
			logger.Mode(req.Mode), logger.Strategy(strategy), logger.Error(err))
		return nil, err
	}

	e.log.DebugContext(ctx, "generated batch",
		logger.Mode(req.Mode), logger.Strategy(strategy), logger.Count(len(out)))
	return out, nil
}

func isBracketed(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

func (e *Engine) expression(ctx context.Context, text string, req Request) ([]string, error) {
	prog, err := e.Compile(text)
	if err != nil {
		return nil, err
	}

	minLen, maxLen, err := e.bounds(ctx)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return prog.Eval(ctx, expr.Env{
		Generator: e.gen,
		MinLength: minLen,
		MaxLength: maxLen,
		Length:    req.Length,
		Input:     req.input(),
	}, req.Count)
}

func (e *Engine) bare(ctx context.Context, mode generator.Mode, req Request) ([]string, error) {
	if mode == generator.UUID {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.gen.UUID(req.Count)
	}

	var custom *charset.Charset
	if mode == generator.CustomCharset {
		custom = req.input()
		if custom == nil {
			return nil, fmt.Errorf("%w: pass the charset as input", ErrMissingCharset)
		}
	}

	cs := req.Case
	if mode == generator.Numeric || mode == generator.CustomCharset {
		cs = charset.CaseAny
	}
	return e.run(ctx, mode, cs, custom, req)
}

func (e *Engine) reference(ctx context.Context, name string, req Request) ([]string, error) {
	e.log.DebugContext(ctx, "resolving reference", logger.Reference(name))

	if e.store == nil || name == "" || name == settingsSection {
		return nil, fmt.Errorf("%w: $%s", ErrUndefinedReference, name)
	}

	exists, err := e.store.HasSection(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: $%s does not exist", ErrUndefinedReference, name)
	}

	typ, _, err := e.store.Get(ctx, name, keyType)
	if err != nil {
		return nil, err
	}
	value, _, err := e.store.Get(ctx, name, keyValue)
	if err != nil {
		return nil, err
	}

	switch typ {
	case typeExpression:
		return e.expression(ctx, value, req)
	case typeCharset:
		custom := req.input()
		if custom == nil {
			if value == "" {
				return nil, fmt.Errorf("%w: $%s has an empty charset", ErrUndefinedReference, name)
			}
			cs := charset.New(value)
			custom = &cs
		}
		// without an explicit length, charset definitions draw from the store bounds
		req.RandomLength = req.Length == 0
		return e.run(ctx, generator.CustomCharset, charset.CaseAny, custom, req)
	default:
		return nil, fmt.Errorf("%w: $%s has invalid type %q", ErrUndefinedReference, name, typ)
	}
}

// run applies the length policy and the no-repeat pre-check, then generates.
func (e *Engine) run(ctx context.Context, mode generator.Mode, cs charset.Case, custom *charset.Charset, req Request) ([]string, error) {
	minLen, maxLen := expr.DefaultLength, expr.DefaultLength
	switch {
	case req.Length > 0:
		minLen, maxLen = req.Length, req.Length
	case req.RandomLength:
		var err error
		if minLen, maxLen, err = e.bounds(ctx); err != nil {
			return nil, err
		}
	}

	if req.NoRepeat && req.Length > 0 {
		limit, err := mode.Cardinality(cs, custom)
		if err != nil {
			return nil, err
		}
		if req.Length > limit {
			return nil, fmt.Errorf("%w: mode %s allows at most %d characters with no-repeat, requested %d",
				ErrLengthExceedsCardinality, mode, limit, req.Length)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.gen.Generate(mode, generator.Request{
		MinLength: minLen,
		MaxLength: maxLen,
		Count:     req.Count,
		Case:      cs,
		NoRepeat:  req.NoRepeat,
		Charset:   custom,
	})
}

// bounds reads the random-length bounds, falling back to the defaults for
// missing or non-numeric values.
func (e *Engine) bounds(ctx context.Context) (int, int, error) {
	if e.store == nil {
		return defaultMinLength, defaultMaxLength, nil
	}

	minLen, err := e.intSetting(ctx, keyMinLength, defaultMinLength)
	if err != nil {
		return 0, 0, err
	}
	maxLen, err := e.intSetting(ctx, keyMaxLength, defaultMaxLength)
	if err != nil {
		return 0, 0, err
	}
	return minLen, maxLen, nil
}

func (e *Engine) intSetting(ctx context.Context, key string, def int) (int, error) {
	raw, ok, err := e.store.Get(ctx, settingsSection, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		e.log.Warn("ignoring non-numeric setting", slog.String("key", key), slog.String("value", raw))
		return def, nil
	}
	return n, nil
}
