// Package markup is the core engine for building well-formed HTML-like
// documents by function composition instead of string templates.
//
// # Builder
//
// Builder is an append-only accumulator of output chunks. Every
// operation takes a Builder value and returns a new one, so a document
// is a chain of ordinary function calls:
//
//	out := markup.Fragment(func(b markup.Builder[struct{}]) markup.Builder[struct{}] {
//	    return markup.El(b, "div", "hello", markup.Class("card"))
//	})
//
// The type parameter is the companion: an arbitrary caller-owned value
// threaded through every operation, including nested element closures,
// without the engine ever inspecting it. Use it for counters, flags, or
// any build-time context that would otherwise need a side channel.
//
// # Well-formedness, not safety
//
// Construction guarantees that every emitted document has correctly
// nested and closed tags. It does NOT guarantee safety: text and
// attribute values are inserted verbatim. Call Escape explicitly on
// anything that may contain markup-significant characters.
//
// # Per-tag constructors
//
// El and Void take the tag name as a string. The tags package provides
// a generated wrapper per known HTML tag; use those for everyday code.
package markup
