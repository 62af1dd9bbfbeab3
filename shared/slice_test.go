package shared

import (
	"slices"
	"testing"
)

func TestNewSlice(t *testing.T) {
	s := NewSlice([]int{1, 2, 3, 4, 5})
	if s.Start() != 0 || s.End() != 5 || s.Len() != 5 {
		t.Errorf("NewSlice() bounds = (%d, %d, len %d), want (0, 5, len 5)", s.Start(), s.End(), s.Len())
	}
	if s.IsEmpty() {
		t.Error("NewSlice() of five elements reported empty")
	}

	var zero Slice[int]
	if !zero.IsEmpty() || zero.AsSlice() != nil {
		t.Error("zero Slice should be empty")
	}
	if _, ok := zero.Get(0); ok {
		t.Error("zero Slice Get(0) should fail")
	}
}

func TestSliceGet(t *testing.T) {
	s := NewSlice([]int{1, 2, 3, 4, 5})
	sub := s.Slice(1, 3)

	tests := []struct {
		name   string
		view   Slice[int]
		idx    int
		want   int
		wantOK bool
	}{
		{"first", s, 0, 1, true},
		{"last", s, 4, 5, true},
		{"past_end", s, 5, 0, false},
		{"negative", s, -1, 0, false},
		{"sub_first", sub, 0, 2, true},
		{"sub_last", sub, 1, 3, true},
		{"sub_bounded_by_view_not_backing", sub, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.view.Get(tt.idx)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Get(%d) = (%d, %v), want (%d, %v)", tt.idx, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSliceClamping(t *testing.T) {
	s := NewSlice([]int{1, 2, 3, 4, 5})

	tests := []struct {
		name             string
		start, end       int
		wantStart, wantE int
		want             []int
	}{
		{"within", 1, 4, 1, 4, []int{2, 3, 4}},
		{"exceeding", 3, 10, 3, 5, []int{4, 5}},
		{"negative_start", -3, 2, 0, 2, []int{1, 2}},
		{"empty", 1, 1, 1, 1, []int{}},
		{"inverted", 4, 2, 4, 4, []int{}},
		{"all_out_of_range", 7, 9, 5, 5, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Slice(tt.start, tt.end)
			if got.Start() != tt.wantStart || got.End() != tt.wantE {
				t.Errorf("Slice(%d, %d) bounds = (%d, %d), want (%d, %d)",
					tt.start, tt.end, got.Start(), got.End(), tt.wantStart, tt.wantE)
			}
			if !slices.Equal(got.AsSlice(), tt.want) {
				t.Errorf("Slice(%d, %d) = %v, want %v", tt.start, tt.end, got.AsSlice(), tt.want)
			}
		})
	}
}

func TestSliceOfSlice(t *testing.T) {
	s := NewSlice([]int{1, 2, 3, 4, 5})
	sub := s.Slice(1, 4).Slice(1, 2)
	if sub.Start() != 2 || sub.End() != 3 {
		t.Errorf("nested Slice bounds = (%d, %d), want (2, 3)", sub.Start(), sub.End())
	}
	if !slices.Equal(sub.AsSlice(), []int{3}) {
		t.Errorf("nested Slice = %v, want [3]", sub.AsSlice())
	}

	if got := s.SliceFrom(3).AsSlice(); !slices.Equal(got, []int{4, 5}) {
		t.Errorf("SliceFrom(3) = %v", got)
	}
	if got := s.SliceTo(2).AsSlice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("SliceTo(2) = %v", got)
	}
}

// TestSliceSharing checks that every derived view keeps the source backing.
func TestSliceSharing(t *testing.T) {
	s := NewSlice([]int{1, 2, 3, 4, 5})
	ranges := [][2]int{{0, 5}, {1, 3}, {3, 5}, {2, 2}, {-1, 100}, {4, 1}}
	for _, r := range ranges {
		sub := s.Slice(r[0], r[1])
		if !s.SameBacking(sub) {
			t.Errorf("Slice(%d, %d) does not share the backing array", r[0], r[1])
		}
		if !sub.Slice(0, 1).SameBacking(s) {
			t.Errorf("Slice(%d, %d).Slice(0, 1) does not share the backing array", r[0], r[1])
		}
	}

	clone := s
	if !clone.SameBacking(s) {
		t.Error("copy of a Slice does not share the backing array")
	}
	if NewSlice([]int{1, 2, 3, 4, 5}).SameBacking(s) {
		t.Error("independent slices with equal content must not share a backing")
	}
}

func TestSliceSelect(t *testing.T) {
	s := NewSlice([]string{"a", "b", "c", "d", "e"}).Slice(1, 5) // b c d e

	tests := []struct {
		name    string
		indices []int
		want    []string
	}{
		{"in_order", []int{0, 2}, []string{"b", "d"}},
		{"reordered", []int{3, 0, 1}, []string{"e", "b", "c"}},
		{"repeated", []int{1, 1}, []string{"c", "c"}},
		{"drops_out_of_range", []int{0, 4, 9, -1, 3}, []string{"b", "e"}},
		{"none", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Select(tt.indices)
			if !slices.Equal(got.AsSlice(), tt.want) {
				t.Errorf("Select(%v) = %v, want %v", tt.indices, got.AsSlice(), tt.want)
			}
			if got.SameBacking(s) {
				t.Error("Select() must build a new backing array")
			}
		})
	}
}

func TestSliceCollectAndAll(t *testing.T) {
	s := Collect(slices.Values([]int{10, 20, 30}))
	if s.Len() != 3 {
		t.Fatalf("Collect() len = %d, want 3", s.Len())
	}

	var idx, vals []int
	for i, v := range s.SliceFrom(1).All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if !slices.Equal(idx, []int{0, 1}) || !slices.Equal(vals, []int{20, 30}) {
		t.Errorf("All() = %v %v, want [0 1] [20 30]", idx, vals)
	}

	cp := s.ToSlice()
	cp[0] = 99
	if v, _ := s.Get(0); v != 10 {
		t.Error("ToSlice() aliased the backing array")
	}
}
