package window

import "fmt"

// SteppedRange yields start, start+step, start+2*step, ... while below end.
type SteppedRange struct {
	next int
	end  int
	step int
}

// NewSteppedRange returns a range over [start, end) advancing by step. It
// panics if the range is empty or step is not positive.
func NewSteppedRange(start, end, step int) *SteppedRange {
	if start >= end {
		panic(fmt.Sprintf("window: invalid range %d..%d", start, end))
	}
	if step <= 0 {
		panic(fmt.Sprintf("window: invalid step %d", step))
	}
	return &SteppedRange{next: start, end: end, step: step}
}

// Next returns the next offset.
func (r *SteppedRange) Next() (int, bool) {
	if r.next >= r.end {
		return 0, false
	}
	v := r.next
	r.next += r.step
	return v, true
}
