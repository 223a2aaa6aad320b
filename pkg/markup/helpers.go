package markup

import "fmt"

// Text appends literal text. Identical to Append; reads better inside
// element closures.
func Text[C any](b Builder[C], text string) Builder[C] {
	return b.Append(text)
}

// Textf appends formatted literal text.
func Textf[C any](b Builder[C], format string, args ...any) Builder[C] {
	return b.Append(fmt.Sprintf(format, args...))
}

// ForEach folds items through fn, threading the builder (and with it
// the companion) from one item to the next:
//
//	markup.ForEach(b, []string{"x", "y"}, func(b B, s string) B {
//	    return markup.El(b, "li", s)
//	})
func ForEach[C, T any](b Builder[C], items []T, fn func(Builder[C], T) Builder[C]) Builder[C] {
	for _, item := range items {
		b = fn(b, item)
	}
	return b
}

// Repeat applies fn n times, passing the iteration index.
func Repeat[C any](b Builder[C], n int, fn func(Builder[C], int) Builder[C]) Builder[C] {
	for i := 0; i < n; i++ {
		b = fn(b, i)
	}
	return b
}

// When applies fn only if cond is true.
func When[C any](b Builder[C], cond bool, fn func(Builder[C]) Builder[C]) Builder[C] {
	if cond {
		return fn(b)
	}
	return b
}

// Unless applies fn only if cond is false.
func Unless[C any](b Builder[C], cond bool, fn func(Builder[C]) Builder[C]) Builder[C] {
	if !cond {
		return fn(b)
	}
	return b
}
