package markup

// Fragment runs fn against a fresh builder with a zero-valued
// companion and exports the result. It is the usual entry point for a
// standalone build:
//
//	chunks := markup.Fragment(func(b markup.Builder[struct{}]) markup.Builder[struct{}] {
//	    return markup.El(b, "p", "hello")
//	})
func Fragment[C any](fn func(Builder[C]) Builder[C]) []string {
	var companion C
	return fn(New(companion)).Export()
}

// FragmentHeader is Fragment with the builder seeded by header chunks,
// given in emission order. Typical use is a doctype or XML prolog:
//
//	markup.FragmentHeader([]string{"<!DOCTYPE html>\n"}, page)
func FragmentHeader[C any](header []string, fn func(Builder[C]) Builder[C]) []string {
	var companion C
	return fn(New(companion, header...)).Export()
}
