package pattern

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorWrapping(t *testing.T) {
	_, err := Parse("DE 4 BE", 1)
	if err == nil {
		t.Fatal("expected error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Unit != "4" {
		t.Errorf("Unit = %q, want %q", pe.Unit, "4")
	}
	if pe.Pos != 3 {
		t.Errorf("Pos = %d, want 3", pe.Pos)
	}
	if !errors.Is(err, ErrMalformedToken) {
		t.Error("errors.Is(err, ErrMalformedToken) = false")
	}
	if errors.Is(err, ErrPatternTooLong) {
		t.Error("errors.Is(err, ErrPatternTooLong) = true")
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("zz", 1)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{`"zz"`, "malformed"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q does not contain %q", msg, want)
		}
	}

	_, err = Parse("42", 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "alignment") {
		t.Errorf("error message %q does not mention alignment", err.Error())
	}
}
