// Package tags provides one constructor per known HTML tag, generated
// from the registry table in internal/gen. Each wrapper partially
// applies the tag name over the two generic constructors in markup:
// non-void tags wrap markup.El, void tags wrap markup.Void.
//
// Which tags exist, and which are void, is configuration, not engine
// logic. To change the set, edit the table and regenerate.
package tags

//go:generate go run github.com/weftml/weft/cmd/weft gen tags -o tags_gen.go

import "github.com/weftml/weft/pkg/markup"

// IsVoid reports whether name is registered as a void element.
func IsVoid(name string) bool {
	return voidTags[name]
}

// Custom appends a content-bearing element with an unregistered tag
// name, such as a web component.
func Custom[C any](b markup.Builder[C], tag string, content any, attrs ...markup.Attr) markup.Builder[C] {
	return markup.El(b, tag, content, attrs...)
}

// CustomVoid appends a void element with an unregistered tag name.
func CustomVoid[C any](b markup.Builder[C], tag string, attrs ...markup.Attr) markup.Builder[C] {
	return markup.Void(b, tag, attrs...)
}
