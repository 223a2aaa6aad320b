package markup

import (
	"reflect"
	"testing"
)

func TestBuilder(t *testing.T) {
	t.Run("new is empty", func(t *testing.T) {
		b := New(struct{}{})
		if !b.Empty() {
			t.Error("Empty() = false, want true")
		}
		if got := b.Export(); len(got) != 0 {
			t.Errorf("Export() = %v, want empty", got)
		}
	})

	t.Run("header round-trip", func(t *testing.T) {
		b := New(struct{}{}, "<!DOCTYPE html>\n")
		want := []string{"<!DOCTYPE html>\n"}
		if got := b.Export(); !reflect.DeepEqual(got, want) {
			t.Errorf("Export() = %v, want %v", got, want)
		}
	})

	t.Run("multi-chunk header keeps order", func(t *testing.T) {
		b := New(0, "a", "b", "c")
		want := []string{"a", "b", "c"}
		if got := b.Export(); !reflect.DeepEqual(got, want) {
			t.Errorf("Export() = %v, want %v", got, want)
		}
	})

	t.Run("append preserves emission order", func(t *testing.T) {
		b := New(struct{}{}).Append("one").Append("two").Append("three")
		want := []string{"one", "two", "three"}
		if got := b.Export(); !reflect.DeepEqual(got, want) {
			t.Errorf("Export() = %v, want %v", got, want)
		}
	})

	t.Run("append does not escape", func(t *testing.T) {
		b := New(struct{}{}).Append("<raw & unsafe>")
		if got := b.Export()[0]; got != "<raw & unsafe>" {
			t.Errorf("Export()[0] = %q, want it verbatim", got)
		}
	})

	t.Run("companion carried unchanged", func(t *testing.T) {
		b := New(42).Append("x").Append("y")
		if b.Companion != 42 {
			t.Errorf("Companion = %v, want 42", b.Companion)
		}
	})
}
