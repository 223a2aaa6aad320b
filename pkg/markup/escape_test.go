package markup

import "testing"

func TestEscape(t *testing.T) {
	t.Run("all special characters", func(t *testing.T) {
		got := Escape(`<>&"'`)
		want := "&lt;&gt;&amp;&quot;&#39;"
		if got != want {
			t.Errorf("Escape = %q, want %q", got, want)
		}
	})

	t.Run("mixed text", func(t *testing.T) {
		if got := Escape("<a&b>"); got != "&lt;a&amp;b&gt;" {
			t.Errorf("Escape = %q, want %q", got, "&lt;a&amp;b&gt;")
		}
	})

	t.Run("clean string returned unchanged", func(t *testing.T) {
		s := "no special characters here"
		if got := Escape(s); got != s {
			t.Errorf("Escape = %q, want input back", got)
		}
	})

	t.Run("empty string", func(t *testing.T) {
		if got := Escape(""); got != "" {
			t.Errorf("Escape = %q, want empty", got)
		}
	})

	t.Run("special at start and end", func(t *testing.T) {
		if got := Escape("<middle>"); got != "&lt;middle&gt;" {
			t.Errorf("Escape = %q, want %q", got, "&lt;middle&gt;")
		}
	})

	t.Run("not idempotent", func(t *testing.T) {
		once := Escape("a & b")
		twice := Escape(once)
		if twice == once {
			t.Error("re-escaping should double-escape, got same string")
		}
		if twice != "a &amp;amp; b" {
			t.Errorf("Escape(Escape) = %q, want %q", twice, "a &amp;amp; b")
		}
	})

	t.Run("multibyte text untouched", func(t *testing.T) {
		s := "héllo wörld ✓"
		if got := Escape(s); got != s {
			t.Errorf("Escape = %q, want input back", got)
		}
	})

	t.Run("no allocation on clean input", func(t *testing.T) {
		s := "a perfectly ordinary sentence"
		allocs := testing.AllocsPerRun(100, func() {
			_ = Escape(s)
		})
		if allocs != 0 {
			t.Errorf("AllocsPerRun = %v, want 0", allocs)
		}
	})
}

func BenchmarkEscape(b *testing.B) {
	b.Run("clean", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Escape("the quick brown fox jumps over the lazy dog")
		}
	})
	b.Run("dense", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Escape(`<a href="x">1 & 2 & 3</a>`)
		}
	})
}
