// Package store persists rget settings and named generator definitions.
//
// Data is organised like an INI file: named sections holding string
// key/value pairs. The "Settings" section carries the global length bounds
// (min_length, max_length) used for random lengths; every other section is a
// named definition with a "type" (re for expressions, cc for charsets) and a
// "value".
//
// Backends implement Store:
//
//   - MemoryStore keeps everything in a map, handy for tests and one-off runs.
//   - FileStore keeps a YAML document on disk and rewrites it atomically on
//     every change.
//   - redis.Storage (package github.com/dmitrymomot/rget/pkg/redis) keeps one
//     hash per section.
//
// # Usage
//
//	st, err := store.NewFileStore("rget.yaml")
//	if err != nil {
//	    return err
//	}
//
//	defs := store.NewDefinitions(st)
//	if err := defs.Add(ctx, store.KindExpression, "email", "[an(10;nr),'@test.com']"); err != nil {
//	    // errors.Is(err, store.ErrDefinitionExists)
//	}
//
//	key, value, err := store.NewSettings(st).Apply(ctx, "max_length=* 2")
//
// The generation engine only reads from a Store; all mutations go through
// Definitions and Settings.
package store
