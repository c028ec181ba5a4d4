package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Mode records the requested generation mode or expression under the key "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Strategy records how a request was dispatched (bare, expression, reference).
func Strategy(name string) slog.Attr {
	return slog.String("strategy", name)
}

// Count records the number of requested strings under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Reference records a $name lookup under the key "reference".
func Reference(name string) slog.Attr {
	return slog.String("reference", name)
}

// CacheHit records whether a compiled expression came from the cache.
func CacheHit(hit bool) slog.Attr {
	return slog.Bool("cache_hit", hit)
}

// Path records a file path or object location under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Store records the definition store driver under the key "store".
func Store(driver string) slog.Attr {
	return slog.String("store", driver)
}
