package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := New("F042", CategoryServer, "something %s", "broke")
	if got := err.Error(); got != "F042: something broke" {
		t.Errorf("Expected code-prefixed message, got %q", got)
	}

	err = &Error{Message: "bare"}
	if got := err.Error(); got != "bare" {
		t.Errorf("Expected bare message, got %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := ConfigParse("fieldwork.json", inner)

	if !stderrors.Is(err, inner) {
		t.Error("Expected errors.Is to reach the wrapped error")
	}

	var fe *Error
	if !stderrors.As(err, &fe) {
		t.Fatal("Expected errors.As to match")
	}
	if fe.Code != CodeConfigParse {
		t.Errorf("Expected %s, got %s", CodeConfigParse, fe.Code)
	}
}

func TestBuilders(t *testing.T) {
	err := UnknownForm("ghost")
	if err.Code != CodeUnknownForm || err.Category != CategoryValidation {
		t.Errorf("Unexpected error: %+v", err)
	}
	if err.Suggestion == "" {
		t.Error("Expected a fix suggestion")
	}

	err = ConfigInvalid("broken").WithDetail("line %d", 3).WithSuggestion("fix it")
	if err.Detail != "line 3" || err.Suggestion != "fix it" {
		t.Errorf("Unexpected error: %+v", err)
	}
}
