// Package cache provides a small generic LRU cache used to memoize compiled
// expressions.
//
// Values are loaded on demand with GetOrLoad. When the cache is full the
// least recently used entry is dropped. Failed loads are never stored, so a
// bad key is recompiled (and fails again) on every call.
//
// # Usage
//
//	programs := cache.New[string, expr.Program](64)
//
//	prog, hit, err := programs.GetOrLoad(text, func() (expr.Program, error) {
//	    return expr.Parse(text)
//	})
//
// All methods are safe for concurrent use. A loader runs outside the lock,
// so two goroutines missing on the same key may both load it; the last one
// to finish wins.
package cache
