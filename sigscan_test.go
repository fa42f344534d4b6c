package sigscan

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/sigscan/pattern"
)

func TestCompile(t *testing.T) {
	sig, err := Compile("DE ?? BE EF", 4)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if sig.Len() != 4 {
		t.Errorf("Len = %d, want 4", sig.Len())
	}
	if sig.Alignment() != 4 {
		t.Errorf("Alignment = %d, want 4", sig.Alignment())
	}
	if sig.String() != "DE ?? BE EF" {
		t.Errorf("String = %q", sig.String())
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		text  string
		align int
		want  error
	}{
		{"DE AD", 0, pattern.ErrInvalidAlignment},
		{"DE AD", 3, pattern.ErrInvalidAlignment},
		{"DE AD", 128, pattern.ErrInvalidAlignment},
		{"DE 4 BE", 1, pattern.ErrMalformedToken},
		{"GG", 1, pattern.ErrMalformedToken},
		{strings.Repeat("90 ", 65), 1, pattern.ErrPatternTooLong},
	}
	for _, tt := range tests {
		sig, err := Compile(tt.text, tt.align)
		if sig != nil {
			t.Errorf("Compile(%q, %d): non-nil Signature on error", tt.text, tt.align)
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Compile(%q, %d) error = %v, want %v", tt.text, tt.align, err, tt.want)
		}
	}
}

func TestMustCompile(t *testing.T) {
	sig := MustCompile("48 8B ??", 1)
	if sig.Len() != 3 {
		t.Errorf("Len = %d, want 3", sig.Len())
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile on invalid input did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "sigscan") {
			t.Errorf("panic value = %v", r)
		}
	}()
	MustCompile("not hex", 1)
}

func TestSignatureSearch(t *testing.T) {
	data := []byte{0x00, 0xDE, 0x01, 0xBE, 0x00, 0xDE, 0x02, 0xBE}
	sig := MustCompile("DE ?? BE", 1)

	if got := sig.Find(data); got != 1 {
		t.Errorf("Find = %d, want 1", got)
	}
	if !sig.Match(data) {
		t.Error("Match = false, want true")
	}
	if got := sig.Count(data); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}

	all := sig.FindAll(data)
	if len(all) != 2 || all[0] != 1 || all[1] != 5 {
		t.Errorf("FindAll = %v, want [1 5]", all)
	}

	dst := make([]int, 1)
	if total := sig.FindInto(data, dst); total != 2 || dst[0] != 1 {
		t.Errorf("FindInto = %d, dst = %v; want 2, [1]", total, dst)
	}
	if total := sig.FindInto(data, nil); total != 2 {
		t.Errorf("FindInto(nil dst) = %d, want 2", total)
	}
}

func TestCompileWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlignedOffsetsOnly = true
	sig, err := CompileWithConfig("AA", 4, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// 0xAA at 0, 1, 4, 5
	data := []byte{0xAA, 0xAA, 0x00, 0x00, 0xAA, 0xAA}
	all := sig.FindAll(data)
	if len(all) != 2 || all[0] != 0 || all[1] != 4 {
		t.Errorf("FindAll = %v, want [0 4]", all)
	}
}
