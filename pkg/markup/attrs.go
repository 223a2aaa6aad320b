package markup

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single attribute. How it renders depends on the value:
//
//	nil or Bare        → ` key` (bare attribute)
//	true               → ` key`
//	false              → dropped entirely
//	[]string           → ` key="tok1 tok2"` (space-joined)
//	string, ints,
//	floats, Stringer   → ` key="value"`
//
// Values are rendered verbatim. Attribute values that may contain
// quotes must be escaped by the caller before being handed in.
type Attr struct {
	Key   string
	Value any
}

// bareValue marks an attribute that renders as its key alone.
type bareValue struct{}

// Bare renders the attribute as a bare key, like a nil value does.
// Useful when nil already means "unset" in the caller's own logic.
var Bare bareValue

// A creates an attribute with the given key and value.
func A(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Flag creates a bare attribute such as `disabled` or `defer`.
func Flag(key string) Attr { return Attr{Key: key, Value: Bare} }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return A("id", id) }

// Class sets the class attribute; multiple classes render space-joined.
func Class(classes ...string) Attr { return A("class", classes) }

// Style sets the style attribute.
func Style(style string) Attr { return A("style", style) }

// Common attributes

// Href sets the href attribute.
func Href(url string) Attr { return A("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return A("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return A("alt", text) }

// Title sets the title attribute.
func Title(text string) Attr { return A("title", text) }

// Type sets the type attribute.
func Type(t string) Attr { return A("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return A("name", name) }

// Value sets the value attribute.
func Value(v any) Attr { return A("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return A("placeholder", text) }

// Data creates a data-* attribute: Data("id", "7") → data-id="7".
func Data(key string, value any) Attr { return A("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return A("role", role) }

// serializeAttrs renders attrs in input order, each prefixed with a
// separating space. Keys are not validated or deduplicated.
func serializeAttrs(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, a := range attrs {
		switch v := a.Value.(type) {
		case nil, bareValue:
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
		case bool:
			if !v {
				continue
			}
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
		case []string:
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
			buf.WriteString(`="`)
			buf.WriteString(strings.Join(v, " "))
			buf.WriteByte('"')
		default:
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
			buf.WriteString(`="`)
			buf.WriteString(attrString(a.Key, a.Value))
			buf.WriteByte('"')
		}
	}
	return buf.String()
}

// attrString stringifies a scalar attribute value. Anything that is
// not a recognized scalar is a contract violation and panics.
func attrString(key string, value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		panic(fmt.Sprintf("markup: unsupported value type %T for attribute %q", value, key))
	}
}
