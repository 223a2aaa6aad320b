package markup

// Builder accumulates output chunks for one document build. Chunks are
// held in emission order in an append-only slice, so adding one is a
// single append and Export is a single copy.
//
// C is the companion type: a caller-owned value carried through every
// operation and into nested element closures. The engine never reads
// or writes it beyond copying it along.
//
// Builder is a value type. Operations return a new value and the input
// should not be reused afterwards; use each state linearly, the way the
// chained call style naturally does.
type Builder[C any] struct {
	frags []string

	// Companion is the caller's build-time context.
	Companion C
}

// New returns a fresh builder carrying companion. Optional chunks seed
// the output and are given in emission order.
func New[C any](companion C, chunks ...string) Builder[C] {
	b := Builder[C]{Companion: companion}
	if len(chunks) > 0 {
		b.frags = append(make([]string, 0, len(chunks)), chunks...)
	}
	return b
}

// Append adds text as the next output chunk. No escaping is performed.
func (b Builder[C]) Append(text string) Builder[C] {
	b.frags = append(b.frags, text)
	return b
}

// Empty reports whether nothing has been emitted yet.
func (b Builder[C]) Empty() bool {
	return len(b.frags) == 0
}

// Export returns the accumulated chunks in emission order.
// Concatenating them yields the document text. The builder is spent
// after Export; do not keep building on it.
func (b Builder[C]) Export() []string {
	out := make([]string, len(b.frags))
	copy(out, b.frags)
	return out
}
