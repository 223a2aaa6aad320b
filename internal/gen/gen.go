// Package gen generates the per-tag constructor wrappers in pkg/tags
// from the registry table. Output is deterministic: the same table
// always produces byte-identical source.
package gen

import (
	"fmt"
	"os"
	"strings"

	"github.com/weftml/weft/internal/errors"
)

// DefaultOutput is where the generated wrappers live.
const DefaultOutput = "pkg/tags/tags_gen.go"

const fileHeader = `// Code generated by weft gen tags. DO NOT EDIT.

package tags

import "github.com/weftml/weft/pkg/markup"
`

// Ident derives the Go identifier for a tag name: the first letter is
// upper-cased, the rest is kept as-is ("div" → Div, "h1" → H1).
func Ident(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

// Render produces the full generated source for the given table.
func Render(table []TagDef) []byte {
	var buf strings.Builder
	buf.WriteString(fileHeader)

	group := ""
	for _, def := range table {
		if def.Group != group {
			group = def.Group
			fmt.Fprintf(&buf, "\n// %s\n", group)
		}
		buf.WriteByte('\n')
		if def.Void {
			fmt.Fprintf(&buf, "// %s appends a void <%s> element.\n", Ident(def.Name), def.Name)
			fmt.Fprintf(&buf, "func %s[C any](b markup.Builder[C], attrs ...markup.Attr) markup.Builder[C] {\n", Ident(def.Name))
			fmt.Fprintf(&buf, "\treturn markup.Void(b, %q, attrs...)\n}\n", def.Name)
		} else {
			fmt.Fprintf(&buf, "// %s appends a <%s> element.\n", Ident(def.Name), def.Name)
			fmt.Fprintf(&buf, "func %s[C any](b markup.Builder[C], content any, attrs ...markup.Attr) markup.Builder[C] {\n", Ident(def.Name))
			fmt.Fprintf(&buf, "\treturn markup.El(b, %q, content, attrs...)\n}\n", def.Name)
		}
	}

	buf.WriteString("\n// voidTags is the set of registered void elements.\n")
	buf.WriteString("var voidTags = map[string]bool{\n")
	for _, def := range table {
		if def.Void {
			fmt.Fprintf(&buf, "\t%q: true,\n", def.Name)
		}
	}
	buf.WriteString("}\n")

	return []byte(buf.String())
}

// Validate checks the table for duplicate names and colliding
// identifiers before generation.
func Validate(table []TagDef) error {
	names := make(map[string]bool, len(table))
	idents := make(map[string]string, len(table))
	for _, def := range table {
		if def.Name == "" {
			return errors.New(errors.CodeEmptyTag)
		}
		if names[def.Name] {
			return errors.Newf(errors.CategoryGen, "duplicate tag %q in registry table", def.Name)
		}
		names[def.Name] = true
		id := Ident(def.Name)
		if prev, ok := idents[id]; ok {
			return errors.Newf(errors.CategoryGen, "tags %q and %q both generate identifier %s", prev, def.Name, id)
		}
		idents[id] = def.Name
	}
	return nil
}

// WriteFile validates the table, renders it, and writes the result.
func WriteFile(path string, table []TagDef) error {
	if err := Validate(table); err != nil {
		return err
	}
	if err := os.WriteFile(path, Render(table), 0o644); err != nil {
		return errors.Newf(errors.CategoryGen, "writing %s: %v", path, err).Wrap(err)
	}
	return nil
}
