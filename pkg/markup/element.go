package markup

import "fmt"

// El appends a content-bearing element to b. Attributes render in the
// order given (see Attr).
//
// Content is one of:
//
//	nil or ""                      → <tag attrs></tag>
//	string                         → <tag attrs>text</tag>
//	func(Builder[C]) Builder[C]    → the closure builds the children
//
// A closure runs against a fresh builder that inherits b's companion;
// the companion it returns becomes the companion of the result, so
// build-time context threads through nesting. A closure that emits
// nothing collapses to the paired empty form.
//
// Text content is inserted verbatim. Any other content type panics:
// it is a programming error, not input to sanitize.
func El[C any](b Builder[C], tag string, content any, attrs ...Attr) Builder[C] {
	open := "<" + tag + serializeAttrs(attrs) + ">"

	switch c := content.(type) {
	case nil:
		return b.Append(open + "</" + tag + ">\n")
	case string:
		if c == "" {
			return b.Append(open + "</" + tag + ">\n")
		}
		return b.Append(open).Append(c).Append("</" + tag + ">\n")
	case func(Builder[C]) Builder[C]:
		inner := c(New(b.Companion))
		if inner.Empty() {
			return b.Append(open + "</" + tag + ">\n")
		}
		b = b.Append(open + "\n")
		b.frags = append(b.frags, inner.frags...)
		b.Companion = inner.Companion
		return b.Append("</" + tag + ">\n")
	default:
		panic(fmt.Sprintf("markup: unsupported content type %T for element <%s>", content, tag))
	}
}

// Void appends a void element: a single self-terminating tag that
// never carries content.
func Void[C any](b Builder[C], tag string, attrs ...Attr) Builder[C] {
	return b.Append("<" + tag + serializeAttrs(attrs) + ">\n")
}
