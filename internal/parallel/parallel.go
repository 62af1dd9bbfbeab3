// Package parallel implements call-scoped fork/join execution.
//
// Work is partitioned by offset before any goroutine starts, one goroutine is
// spawned per partition and the caller blocks until every goroutine has
// returned. Results are always reassembled in partition order, never in
// completion order, so a parallel computation is element-for-element identical
// to its sequential equivalent regardless of scheduling.
package parallel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// Workers returns the default degree of parallelism.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits [0, n) into at most parts contiguous, non-empty ranges in
// ascending order. Fewer ranges are returned when n < parts. Partition panics
// if parts is not positive.
func Partition(n, parts int) []Range {
	if parts <= 0 {
		panic(fmt.Sprintf("parallel: invalid partition count %d", parts))
	}
	if n <= 0 {
		return nil
	}
	size := (n + parts - 1) / parts
	ranges := make([]Range, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		ranges = append(ranges, Range{Start: start, End: min(start+size, n)})
	}
	return ranges
}

// slot holds one task result. The padding keeps neighbouring slots on
// separate cache lines while workers write them concurrently.
type slot[T any] struct {
	value T
	_     cpu.CacheLinePad
}

// Gather runs fn(i) for every i in [0, tasks) on its own goroutine and returns
// the results indexed by i. It returns only after every task has finished.
func Gather[T any](tasks int, fn func(i int) T) []T {
	if tasks <= 0 {
		return nil
	}
	if tasks == 1 {
		return []T{fn(0)}
	}

	slots := make([]slot[T], tasks)
	var g errgroup.Group
	for i := range tasks {
		g.Go(func() error {
			slots[i].value = fn(i)
			return nil
		})
	}
	// Tasks never fail; Wait is the join point.
	_ = g.Wait()

	out := make([]T, tasks)
	for i := range slots {
		out[i] = slots[i].value
	}
	return out
}

// Concat flattens parts in order into a single slice.
func Concat[T any](parts [][]T) []T {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]T, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
