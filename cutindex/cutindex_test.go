package cutindex

import (
	"slices"
	"strings"
	"testing"
)

func isNewline(r rune) bool { return r == '\n' }

type span struct{ start, end int }

func spans(x Index) []span {
	out := make([]span, 0, x.Len())
	for i := range x.Len() {
		s, e, ok := x.Span(i)
		if !ok {
			break
		}
		out = append(out, span{s, e})
	}
	return out
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []span
	}{
		{"empty", "", []span{{0, 0}}},
		{"single_newline", "\n", []span{{0, 0}, {1, 1}}},
		{"single_char", "a", []span{{0, 1}}},
		{"no_matches", "abc", []span{{0, 3}}},
		{"all_matches", "\n\n\n", []span{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"mixed", "a\nbc\nd\n", []span{{0, 1}, {2, 4}, {5, 6}, {7, 7}}},
		{"first_matches", "\nab", []span{{0, 0}, {1, 3}}},
		{"last_matches", "ab\n", []span{{0, 2}, {3, 3}}},
		{"blank_line", "a\n\nline 3", []span{{0, 1}, {2, 2}, {3, 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := Build([]rune(tt.input), isNewline)
			if got := spans(x); !slices.Equal(got, tt.want) {
				t.Errorf("Build(%q) spans = %v, want %v", tt.input, got, tt.want)
			}
			if x.Len() != len(tt.want) {
				t.Errorf("Build(%q).Len() = %d, want %d", tt.input, x.Len(), len(tt.want))
			}
			if x.IsEmpty() {
				t.Errorf("Build(%q) reported empty", tt.input)
			}

			b := BuildBytes([]byte(tt.input), '\n')
			if got := spans(b); !slices.Equal(got, tt.want) {
				t.Errorf("BuildBytes(%q) spans = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSegmentLaw(t *testing.T) {
	input := "first\nsecond\n\nfourth line\nx"
	x := BuildBytes([]byte(input), '\n')
	for i := range x.Len() - 1 {
		end, _ := x.End(i)
		next, _ := x.Start(i + 1)
		if next != end+1 {
			t.Errorf("Start(%d) = %d, want End(%d)+1 = %d", i+1, next, i, end+1)
		}
		if input[end] != '\n' {
			t.Errorf("End(%d) = %d does not point at a newline", i, end)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	x := BuildBytes([]byte("a\nb"), '\n')
	for _, i := range []int{-1, 2, 100} {
		if _, ok := x.Start(i); ok {
			t.Errorf("Start(%d) succeeded on a 2-segment index", i)
		}
		if _, ok := x.End(i); ok {
			t.Errorf("End(%d) succeeded on a 2-segment index", i)
		}
	}

	var zero Index
	if zero.Len() != 0 || !zero.IsEmpty() {
		t.Errorf("zero Index Len() = %d, want 0", zero.Len())
	}
}

func TestSlice(t *testing.T) {
	x := BuildBytes([]byte("a\nbc\nd\n"), '\n') // (0,1) (2,4) (5,6) (7,7)

	tests := []struct {
		name       string
		start, end int
		want       []span
	}{
		{"middle", 1, 3, []span{{2, 4}, {5, 6}}},
		{"head", 0, 2, []span{{0, 1}, {2, 4}}},
		{"tail", 2, 4, []span{{5, 6}, {7, 7}}},
		{"clamped", 3, 10, []span{{7, 7}}},
		{"empty", 2, 2, []span{}},
		{"inverted", 3, 1, []span{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := x.Slice(tt.start, tt.end)
			if got := spans(sub); !slices.Equal(got, tt.want) {
				t.Errorf("Slice(%d, %d) spans = %v, want %v", tt.start, tt.end, got, tt.want)
			}
			if !sub.SameBacking(x) {
				t.Errorf("Slice(%d, %d) does not share the cut array", tt.start, tt.end)
			}
		})
	}

	nested := x.Slice(1, 4).Slice(1, 2)
	if got := spans(nested); !slices.Equal(got, []span{{5, 6}}) {
		t.Errorf("nested Slice spans = %v, want [{5 6}]", got)
	}
}

func TestBuildParMatchesBuild(t *testing.T) {
	var sb strings.Builder
	for i := range 1000 {
		sb.WriteString(strings.Repeat("x", i%17))
		if i%5 != 0 {
			sb.WriteByte('\n')
		}
	}
	data := []byte(sb.String())
	want := Build(data, func(b byte) bool { return b == '\n' }).Cuts()

	for _, parts := range []int{1, 2, 3, 7, 16, 64, len(data) + 10} {
		got := BuildParN(data, func(b byte) bool { return b == '\n' }, parts).Cuts()
		if !slices.Equal(got, want) {
			t.Errorf("BuildParN(parts=%d) differs from Build", parts)
		}
		got = BuildBytesParN(data, '\n', parts).Cuts()
		if !slices.Equal(got, want) {
			t.Errorf("BuildBytesParN(parts=%d) differs from Build", parts)
		}
	}

	if got := BuildPar(data, func(b byte) bool { return b == '\n' }).Cuts(); !slices.Equal(got, want) {
		t.Error("BuildPar() differs from Build")
	}
	if got := BuildBytesPar(data, '\n').Cuts(); !slices.Equal(got, want) {
		t.Error("BuildBytesPar() differs from Build")
	}
}

func TestBuildParEmpty(t *testing.T) {
	x := BuildBytesParN(nil, '\n', 4)
	if got := spans(x); !slices.Equal(got, []span{{0, 0}}) {
		t.Errorf("BuildBytesParN(nil) spans = %v, want [{0 0}]", got)
	}
}

func TestBuildParNPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("BuildParN(parts=0) did not panic")
		}
	}()
	BuildParN([]int{1, 2, 3}, func(int) bool { return false }, 0)
}

func BenchmarkBuildBytes(b *testing.B) {
	data := []byte(strings.Repeat("2024-01-01 12:00:00 INFO request served in 12ms\n", 20000))
	b.SetBytes(int64(len(data)))
	b.Run("sequential", func(b *testing.B) {
		for b.Loop() {
			BuildBytes(data, '\n')
		}
	})
	b.Run("parallel", func(b *testing.B) {
		for b.Loop() {
			BuildBytesPar(data, '\n')
		}
	})
}

func TestFindAll(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	tests := []struct {
		name string
		arr  []int
		want []int
	}{
		{"empty", nil, []int{}},
		{"none", []int{1, 3, 5}, []int{}},
		{"all", []int{2, 4}, []int{0, 1}},
		{"mixed", []int{1, 2, 3, 4, 6, 7}, []int{1, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindAll(tt.arr, even).AsSlice(); !slices.Equal(got, tt.want) {
				t.Errorf("FindAll(%v) = %v, want %v", tt.arr, got, tt.want)
			}
			for _, parts := range []int{1, 2, 3, 8} {
				if got := FindAllParN(tt.arr, even, parts).AsSlice(); !slices.Equal(got, tt.want) {
					t.Errorf("FindAllParN(%v, parts=%d) = %v, want %v", tt.arr, parts, got, tt.want)
				}
			}
		})
	}
}

func TestFindAllParMatchesFindAll(t *testing.T) {
	arr := make([]int, 10007)
	for i := range arr {
		arr[i] = (i * 7919) % 13
	}
	pred := func(v int) bool { return v < 3 }

	want := FindAll(arr, pred).AsSlice()
	if got := FindAllPar(arr, pred).AsSlice(); !slices.Equal(got, want) {
		t.Error("FindAllPar() differs from FindAll")
	}
	for _, parts := range []int{2, 5, 64, len(arr) + 1} {
		if got := FindAllParN(arr, pred, parts).AsSlice(); !slices.Equal(got, want) {
			t.Errorf("FindAllParN(parts=%d) differs from FindAll", parts)
		}
	}
}

func TestFindAllParNPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("FindAllParN(parts=-1) did not panic")
		}
	}()
	FindAllParN([]int{1}, func(int) bool { return true }, -1)
}
