package tags

import (
	"strings"
	"testing"

	"github.com/weftml/weft/pkg/markup"
)

type unit = struct{}

func render(chunks []string) string {
	return strings.Join(chunks, "")
}

func TestGeneratedWrappers(t *testing.T) {
	t.Run("non-void wrapper", func(t *testing.T) {
		b := Div(markup.New(unit{}), "hi", markup.Class("a", "b"))
		want := "<div class=\"a b\">hi</div>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("void wrapper", func(t *testing.T) {
		b := Img(markup.New(unit{}), markup.Src("a.png"), markup.Attr{Key: "alt"})
		want := "<img src=\"a.png\" alt>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("nested page", func(t *testing.T) {
		chunks := markup.FragmentHeader([]string{"<!DOCTYPE html>\n"}, func(b markup.Builder[unit]) markup.Builder[unit] {
			return Html(b, func(b markup.Builder[unit]) markup.Builder[unit] {
				b = Head(b, func(b markup.Builder[unit]) markup.Builder[unit] {
					b = Meta(b, markup.A("charset", "utf-8"))
					return Title(b, "home")
				})
				return Body(b, func(b markup.Builder[unit]) markup.Builder[unit] {
					return P(b, "welcome")
				})
			})
		})
		got := render(chunks)
		want := "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>home</title>\n</head>\n<body>\n<p>welcome</p>\n</body>\n</html>\n"
		if got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("list via fold", func(t *testing.T) {
		b := Ul(markup.New(unit{}), func(b markup.Builder[unit]) markup.Builder[unit] {
			return markup.ForEach(b, []string{"x", "y", "z"}, func(b markup.Builder[unit], s string) markup.Builder[unit] {
				return Li(b, s)
			})
		})
		want := "<ul>\n<li>x</li>\n<li>y</li>\n<li>z</li>\n</ul>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})
}

func TestIsVoid(t *testing.T) {
	voids := []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"}
	for _, name := range voids {
		if !IsVoid(name) {
			t.Errorf("IsVoid(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"div", "span", "ul", "custom-thing", ""} {
		if IsVoid(name) {
			t.Errorf("IsVoid(%q) = true, want false", name)
		}
	}
}

func TestCustom(t *testing.T) {
	t.Run("custom element", func(t *testing.T) {
		b := Custom(markup.New(unit{}), "x-chart", nil, markup.Data("points", "1 2 3"))
		want := "<x-chart data-points=\"1 2 3\"></x-chart>\n"
		if got := render(b.Export()); got != want {
			t.Errorf("render = %q, want %q", got, want)
		}
	})

	t.Run("custom void", func(t *testing.T) {
		b := CustomVoid(markup.New(unit{}), "x-rule")
		if got := render(b.Export()); got != "<x-rule>\n" {
			t.Errorf("render = %q, want %q", got, "<x-rule>\n")
		}
	})
}
