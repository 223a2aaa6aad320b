package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	t.Run("registered code", func(t *testing.T) {
		err := New(CodeEmptyTag)
		if err.Category != CategoryGen {
			t.Errorf("Category = %v, want %v", err.Category, CategoryGen)
		}
		if err.Error() != "W001: empty tag name in registry table" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		err := New("W999")
		if err.Message != "unknown error" {
			t.Errorf("Message = %q, want unknown error", err.Message)
		}
	})

	t.Run("newf has no code", func(t *testing.T) {
		err := Newf(CategoryCLI, "bad flag %q", "x")
		if err.Error() != `bad flag "x"` {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := fmt.Errorf("disk full")
		err := New(CodeConfigInvalid).Wrap(inner)
		if !stderrors.Is(err, inner) {
			t.Error("errors.Is should find the wrapped error")
		}
	})

	t.Run("from error passes through", func(t *testing.T) {
		orig := New(CodeBucketMissing)
		if got := FromError(orig, CodeConfigInvalid); got != orig {
			t.Error("FromError should return an existing *Error unchanged")
		}
	})

	t.Run("from nil", func(t *testing.T) {
		if got := FromError(nil, CodeConfigInvalid); got != nil {
			t.Errorf("FromError(nil) = %v, want nil", got)
		}
	})

	t.Run("builders", func(t *testing.T) {
		err := Newf(CategoryPublish, "upload failed").
			WithSuggestion("check credentials").
			WithDetail("the S3 PutObject call was rejected")
		if err.Suggestion == "" || err.Detail == "" {
			t.Error("builders should set fields")
		}
	})
}
