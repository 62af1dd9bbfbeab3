package window

import "github.com/eapache/queue"

// RoundRobin interleaves several iterators, taking one item from each live
// iterator per cycle. Exhausted iterators are dropped from the rotation, so no
// iterator can starve the others.
type RoundRobin[T any] struct {
	q *queue.Queue
}

// NewRoundRobin returns a round robin over iters in the given order.
func NewRoundRobin[T any](iters ...Iterator[T]) *RoundRobin[T] {
	q := queue.New()
	for _, it := range iters {
		q.Add(it)
	}
	return &RoundRobin[T]{q: q}
}

// Next pulls one item from the iterator at the front of the rotation and moves
// it to the back. Exhausted iterators are discarded until one yields or the
// rotation is empty.
func (r *RoundRobin[T]) Next() (T, bool) {
	for r.q.Length() > 0 {
		it := r.q.Remove().(Iterator[T])
		if v, ok := it.Next(); ok {
			r.q.Add(it)
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Live returns the number of iterators still in the rotation. An iterator is
// only known to be exhausted after it has been asked for an item.
func (r *RoundRobin[T]) Live() int {
	return r.q.Length()
}
