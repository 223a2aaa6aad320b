package markup

import "strings"

// Escape replaces the five markup-significant characters with their
// entities: < > & " '. It is a single left-to-right pass and returns
// the input string itself, without copying, when no replacement is
// needed.
//
// Escape is never applied implicitly by the engine. It is also not
// idempotent: escaping an already-escaped string escapes the
// ampersands again.
func Escape(s string) string {
	var buf strings.Builder
	last := 0 // start of the pending unescaped run
	for i := 0; i < len(s); i++ {
		var ent string
		switch s[i] {
		case '<':
			ent = "&lt;"
		case '>':
			ent = "&gt;"
		case '&':
			ent = "&amp;"
		case '"':
			ent = "&quot;"
		case '\'':
			ent = "&#39;"
		default:
			continue
		}
		if buf.Cap() == 0 {
			buf.Grow(len(s) + 16)
		}
		buf.WriteString(s[last:i])
		buf.WriteString(ent)
		last = i + 1
	}
	if last == 0 {
		return s
	}
	buf.WriteString(s[last:])
	return buf.String()
}
