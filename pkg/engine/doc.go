// Package engine is the entry point for generating random strings in rget.
//
// Generate inspects the requested mode and picks a strategy:
//
//   - "$name" resolves a named definition from the store. Definitions of type
//     re are evaluated as expressions, type cc values are used as a charset.
//   - "[...]" is parsed and evaluated as a composite expression.
//   - n, a, an, cc and u run the matching generator directly.
//   - Anything else is parsed as an unbracketed expression, so "n(5)" works
//     and unknown names fail with ErrUnknownMode.
//
// For bare modes the length comes from Request.Length when set, from the
// store's min_length/max_length when RandomLength is set, and is 8 otherwise.
// A $name charset definition uses Request.Length when set and the store
// bounds otherwise.
//
// # Usage
//
//	st, _ := store.NewFileStore("rget.yaml")
//	eng := engine.New(st, engine.WithLogger(log))
//
//	out, err := eng.Generate(ctx, engine.Request{
//	    Mode:  "[an(10;nr),'@test.com',n(5;r)]",
//	    Count: 3,
//	})
//	switch {
//	case errors.Is(err, engine.ErrUnterminatedGroup):
//	case errors.Is(err, engine.ErrLengthExceedsCardinality):
//	case errors.Is(err, engine.ErrUndefinedReference):
//	}
//
// A request either yields Count strings or an error; partial batches are
// never returned. The engine only reads from the store.
//
// An Engine is safe for concurrent use. Generation is serialized on the
// engine's random source; compiled expressions are cached in an LRU.
package engine
