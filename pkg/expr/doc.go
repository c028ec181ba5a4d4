// Package expr compiles and evaluates rget composite expressions.
//
// An expression is a sequence of mode invocations and literals, usually
// wrapped in brackets:
//
//	[an(10;nr),'@test.com',n(5;r)]
//
// Grammar, scanned left to right in a single pass:
//
//   - A letter followed by letters or digits is a mode name (n, a, an, cc, u).
//     Unknown names are kept and rejected at evaluation time.
//   - A mode name immediately followed by "(" takes the text up to the next ")"
//     as parameters separated by ";". Parentheses do not nest.
//   - Text between matching ' or " quotes is a literal.
//   - Whitespace, ",", "[" and "]" separate segments and are dropped.
//   - Any other character is a one-character literal.
//
// Parameters of an invocation:
//
//   - The first parameter is the length: digits for a fixed length, "r" for a
//     length drawn from the configured bounds, anything else for the default.
//   - "nr" anywhere disables repeated characters.
//   - "s" or "S" anywhere restricts letters to lower or upper case.
//   - For cc, the remaining parameters form the charset.
//
// # Usage
//
//	prog, err := expr.Parse("['1',n(10;nr),'K']")
//	if err != nil {
//	    // errors.Is(err, expr.ErrUnterminatedGroup) ...
//	}
//
//	out, err := prog.Eval(ctx, expr.Env{
//	    Generator: generator.New(nil),
//	    MinLength: 1,
//	    MaxLength: 32,
//	}, 5)
//
// Parsing is pure: the same text always yields the same Program, so a
// Program can be cached and evaluated any number of times.
package expr
