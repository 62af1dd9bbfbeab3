package pattern

import (
	"slices"
	"testing"

	"github.com/coregx/logview/shared"
)

func pieces(s *Splitter) []string {
	var out []string
	for t := range s.All() {
		out = append(out, t.String())
	}
	return out
}

func TestSplitLaws(t *testing.T) {
	tests := []struct {
		name string
		text string
		p    shared.Pattern
		want []string
	}{
		{"empty_text", "", Literal(","), []string{""}},
		{"empty_text_charset", "", NewCharSet(",;"), []string{""}},
		{"empty_pattern", "a,b", Literal(""), []string{"a,b"}},
		{"empty_charset", "a,b", NewCharSet(""), []string{"a,b"}},
		{"consecutive", "a,,b", Literal(","), []string{"a", "", "b"}},
		{"leading", ",a", Literal(","), []string{"", "a"}},
		{"trailing", "a,", Literal(","), []string{"a", ""}},
		{"only_delimiter", ",", Literal(","), []string{"", ""}},
		{"no_match", "abc", Literal(","), []string{"abc"}},
		{"multi_byte_delimiter", "a::b::c", Literal("::"), []string{"a", "b", "c"}},
		{"regex", "a1b22c", MustCompileRegex(`\d+`), []string{"a", "b", "c"}},
		{"charset", "k=v;x=y", NewCharSet("=;"), []string{"k", "v", "x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pieces(Split(shared.NewText(tt.text), tt.p)); !slices.Equal(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitFused(t *testing.T) {
	s := Split(shared.NewText("a,b"), Literal(","))
	if got := len(s.Collect()); got != 2 {
		t.Fatalf("Collect() returned %d pieces, want 2", got)
	}
	for range 3 {
		if _, ok := s.Next(); ok {
			t.Error("Next() after exhaustion reported true")
		}
	}
}

func TestSplitSharesBacking(t *testing.T) {
	base := shared.NewText("GET /a 200")
	for _, piece := range Split(base, Literal(" ")).Collect() {
		if !piece.SameBacking(base) {
			t.Errorf("piece %q does not share the source backing", piece)
		}
		if off, ok := base.RelativePosition(piece); !ok || base.String()[off:off+piece.Len()] != piece.String() {
			t.Errorf("piece %q at offset %d does not line up with the source", piece, off)
		}
	}
}

func TestSplitAny(t *testing.T) {
	got := pieces(SplitAny(shared.NewText("src=1.2.3.4 dst=[::1]"), " =[]"))
	want := []string{"src", "1.2.3.4", "dst", "", "::1", ""}
	if !slices.Equal(got, want) {
		t.Errorf("SplitAny() = %q, want %q", got, want)
	}
}

func BenchmarkSplit(b *testing.B) {
	text := shared.NewText("2024-01-01T00:00:00Z host=web-1 method=GET path=/index.html status=200 bytes=5120")
	b.Run("literal", func(b *testing.B) {
		for b.Loop() {
			_ = Split(text, Literal(" ")).Collect()
		}
	})
	b.Run("charset", func(b *testing.B) {
		cs := NewCharSet(" =")
		for b.Loop() {
			_ = Split(text, cs).Collect()
		}
	})
}
