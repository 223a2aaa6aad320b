package markup

import (
	"fmt"
	"strings"
	"testing"
)

// render joins exported chunks into the document text.
func render(chunks []string) string {
	return strings.Join(chunks, "")
}

type unit = struct{}

func TestVoid(t *testing.T) {
	t.Run("img with attributes", func(t *testing.T) {
		b := Void(New(unit{}), "img", Src("a.png"), Attr{Key: "alt"})
		want := "<img src=\"a.png\" alt>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("no attributes", func(t *testing.T) {
		b := Void(New(unit{}), "br")
		if got := render(b.Export()); got != "<br>\n" {
			t.Errorf("render = %q, want %q", got, "<br>\n")
		}
	})
}

func TestEl(t *testing.T) {
	t.Run("text content", func(t *testing.T) {
		b := El(New(unit{}), "div", "hi", Class("a", "b"))
		want := "<div class=\"a b\">hi</div>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("text content is three chunks", func(t *testing.T) {
		got := El(New(unit{}), "p", "hi").Export()
		want := []string{"<p>", "hi", "</p>\n"}
		if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Errorf("Export() = %q, want %q", got, want)
		}
	})

	t.Run("nil content renders paired empty form", func(t *testing.T) {
		b := El(New(unit{}), "div", nil)
		if got := render(b.Export()); got != "<div></div>\n" {
			t.Errorf("render = %q, want %q", got, "<div></div>\n")
		}
	})

	t.Run("empty string same as nil", func(t *testing.T) {
		a := render(El(New(unit{}), "span", "").Export())
		b := render(El(New(unit{}), "span", nil).Export())
		if a != b {
			t.Errorf("empty string %q != nil content %q", a, b)
		}
	})

	t.Run("text not escaped", func(t *testing.T) {
		b := El(New(unit{}), "p", "<b>bold</b>")
		if got := render(b.Export()); got != "<p><b>bold</b></p>\n" {
			t.Errorf("render = %q, want text verbatim", got)
		}
	})

	t.Run("closure content", func(t *testing.T) {
		b := El(New(unit{}), "ul", func(b Builder[unit]) Builder[unit] {
			return ForEach(b, []string{"x", "y", "z"}, func(b Builder[unit], s string) Builder[unit] {
				return El(b, "li", s)
			})
		})
		want := "<ul>\n<li>x</li>\n<li>y</li>\n<li>z</li>\n</ul>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("empty closure collapses", func(t *testing.T) {
		viaClosure := render(El(New(unit{}), "div", func(b Builder[unit]) Builder[unit] {
			return b
		}).Export())
		viaNil := render(El(New(unit{}), "div", nil).Export())
		if viaClosure != viaNil {
			t.Errorf("empty closure %q != absent content %q", viaClosure, viaNil)
		}
	})

	t.Run("nested closures", func(t *testing.T) {
		b := El(New(unit{}), "div", func(b Builder[unit]) Builder[unit] {
			return El(b, "section", func(b Builder[unit]) Builder[unit] {
				return El(b, "p", "deep")
			})
		})
		want := "<div>\n<section>\n<p>deep</p>\n</section>\n</div>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("closure inherits companion", func(t *testing.T) {
		var seen int
		El(New(7), "div", func(b Builder[int]) Builder[int] {
			seen = b.Companion
			return b.Append("x")
		})
		if seen != 7 {
			t.Errorf("inner companion = %d, want 7", seen)
		}
	})

	t.Run("closure companion propagates out", func(t *testing.T) {
		b := El(New(0), "ol", func(b Builder[int]) Builder[int] {
			return Repeat(b, 3, func(b Builder[int], i int) Builder[int] {
				b.Companion++
				return El(b, "li", fmt.Sprintf("item %d", b.Companion))
			})
		})
		if b.Companion != 3 {
			t.Errorf("outer companion = %d, want 3", b.Companion)
		}
	})

	t.Run("unsupported content panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for int content")
			}
		}()
		El(New(unit{}), "div", 42)
	})

	t.Run("attributes rendered for every content kind", func(t *testing.T) {
		withNil := render(El(New(unit{}), "div", nil, ID("a")).Export())
		if withNil != "<div id=\"a\"></div>\n" {
			t.Errorf("nil content = %q", withNil)
		}
		withClosure := render(El(New(unit{}), "div", func(b Builder[unit]) Builder[unit] {
			return El(b, "p", "x")
		}, ID("a")).Export())
		if !strings.HasPrefix(withClosure, "<div id=\"a\">\n") {
			t.Errorf("closure content = %q", withClosure)
		}
	})
}

func TestFragment(t *testing.T) {
	t.Run("plain fragment", func(t *testing.T) {
		chunks := Fragment(func(b Builder[unit]) Builder[unit] {
			return El(b, "p", "hello")
		})
		if got := render(chunks); got != "<p>hello</p>\n" {
			t.Errorf("render = %q, want %q", got, "<p>hello</p>\n")
		}
	})

	t.Run("with header", func(t *testing.T) {
		chunks := FragmentHeader([]string{"<!DOCTYPE html>\n"}, func(b Builder[unit]) Builder[unit] {
			return El(b, "html", nil)
		})
		want := "<!DOCTYPE html>\n<html></html>\n"
		if got := render(chunks); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("header only round-trip", func(t *testing.T) {
		chunks := FragmentHeader([]string{"<!-- hdr -->"}, func(b Builder[unit]) Builder[unit] {
			return b
		})
		if len(chunks) != 1 || chunks[0] != "<!-- hdr -->" {
			t.Errorf("chunks = %q, want just the header", chunks)
		}
	})
}

func BenchmarkEl(b *testing.B) {
	items := []string{"alpha", "beta", "gamma", "delta"}
	b.Run("list", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Fragment(func(b Builder[unit]) Builder[unit] {
				return El(b, "ul", func(b Builder[unit]) Builder[unit] {
					return ForEach(b, items, func(b Builder[unit], s string) Builder[unit] {
						return El(b, "li", s, Class("item"))
					})
				})
			})
		}
	})
}
