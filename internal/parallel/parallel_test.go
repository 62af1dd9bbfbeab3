package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		parts int
		want  []Range
	}{
		{"empty", 0, 4, nil},
		{"fewer_items_than_parts", 3, 8, []Range{{0, 1}, {1, 2}, {2, 3}}},
		{"even", 8, 4, []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"uneven", 10, 4, []Range{{0, 3}, {3, 6}, {6, 9}, {9, 10}}},
		{"single_part", 5, 1, []Range{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.n, tt.parts)
			if len(got) != len(tt.want) {
				t.Fatalf("Partition(%d, %d) = %v, want %v", tt.n, tt.parts, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Partition(%d, %d)[%d] = %v, want %v", tt.n, tt.parts, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPartitionCoversInput(t *testing.T) {
	for n := 1; n < 200; n++ {
		for parts := 1; parts <= 17; parts++ {
			next := 0
			for _, r := range Partition(n, parts) {
				if r.Start != next || r.Len() <= 0 {
					t.Fatalf("Partition(%d, %d) has gap or empty range at %v", n, parts, r)
				}
				next = r.End
			}
			if next != n {
				t.Fatalf("Partition(%d, %d) ends at %d", n, parts, next)
			}
		}
	}
}

func TestPartitionPanicsOnInvalidParts(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Partition() did not panic on zero parts")
		}
	}()
	Partition(10, 0)
}

// TestGatherOrder makes early tasks finish last; results must still be in
// task order.
func TestGatherOrder(t *testing.T) {
	const tasks = 16
	got := Gather(tasks, func(i int) int {
		time.Sleep(time.Duration(tasks-i) * time.Millisecond)
		return i * i
	})
	if len(got) != tasks {
		t.Fatalf("Gather() returned %d results, want %d", len(got), tasks)
	}
	for i, v := range got {
		if v != i*i {
			t.Errorf("Gather()[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestGatherJoinsAllTasks(t *testing.T) {
	var done atomic.Int64
	Gather(runtime.GOMAXPROCS(0)*2, func(int) struct{} {
		done.Add(1)
		return struct{}{}
	})
	if got := done.Load(); got != int64(runtime.GOMAXPROCS(0)*2) {
		t.Errorf("Gather() returned before all tasks finished: %d done", got)
	}
	if Gather(0, func(int) int { return 1 }) != nil {
		t.Error("Gather(0) should return nil")
	}
}

func TestConcat(t *testing.T) {
	got := Concat([][]int{{1, 2}, nil, {3}, {4, 5}})
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Concat() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Concat()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWorkers(t *testing.T) {
	if Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", Workers())
	}
}
