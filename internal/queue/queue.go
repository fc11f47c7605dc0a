// Package queue implements the growable FIFO sample buffer used to stage
// audio between the caller and the pitch-synchronous speed-change driver.
//
// It is a straight generalization of the append/shift discipline in
// sonic.c's enlargeInputBufferIfNeeded/removeInputSamples: a contiguous
// slice that grows geometrically and never shrinks, so the driver can hand
// the pitch estimator and mutators a contiguous view of any prefix without
// an unwrap step.
package queue

// Allocator allocates a slice of n zeroed float32s. Growth failure (the
// Go-idiomatic equivalent of sonic.c's realloc returning NULL) is reported
// by returning a non-nil error; a real allocator only ever has reason to do
// this under injected test conditions, since Go's runtime otherwise treats
// out-of-memory as fatal rather than recoverable.
type Allocator func(n int) ([]float32, error)

// defaultAllocate is the Allocator used when none is supplied.
func defaultAllocate(n int) ([]float32, error) {
	return make([]float32, n), nil
}

// Float is a FIFO of 32-bit float samples backed by a contiguous slice.
// Append is amortized O(1); Drop shifts the retained suffix down to index 0.
// A Float is not safe for concurrent use — callers serialize access the same
// way a Stream does (see the package doc at the repository root).
type Float struct {
	data  []float32
	alloc Allocator
}

// NewFloat creates a Float with the given initial capacity.
func NewFloat(capacity int) (*Float, error) {
	return NewFloatWithAllocator(capacity, nil)
}

// NewFloatWithAllocator is NewFloat with an explicit Allocator, letting
// callers (tests, mainly) make growth fail deterministically.
func NewFloatWithAllocator(capacity int, alloc Allocator) (*Float, error) {
	if alloc == nil {
		alloc = defaultAllocate
	}
	if capacity < 0 {
		capacity = 0
	}
	buf, err := alloc(capacity)
	if err != nil {
		return nil, err
	}
	return &Float{data: buf[:0], alloc: alloc}, nil
}

// Len returns the number of buffered samples.
func (q *Float) Len() int {
	return len(q.data)
}

// Cap returns the current backing capacity.
func (q *Float) Cap() int {
	return cap(q.data)
}

// View returns the buffered samples as a read-only contiguous slice,
// starting at sample offset pos. The slice aliases the queue's internal
// storage and is invalidated by the next Append, PadZero, or Drop.
func (q *Float) View(pos int) []float32 {
	return q.data[pos:]
}

// Append grows the queue (if needed) and copies samples onto the end.
// Growth follows sonic.c's rule: newCapacity = oldCapacity + oldCapacity/2 +
// len(samples), so repeated appends are amortized O(1) regardless of chunk
// size. Growth failure leaves the queue unchanged and returns an error.
func (q *Float) Append(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}
	needed := len(q.data) + len(samples)
	if needed > cap(q.data) {
		if err := q.grow(needed); err != nil {
			return err
		}
	}
	q.data = append(q.data, samples...)
	return nil
}

// grow reallocates the backing slice to at least minCapacity.
func (q *Float) grow(minCapacity int) error {
	newCapacity := cap(q.data) + cap(q.data)>>growthShift + (minCapacity - len(q.data))
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	buf, err := q.alloc(newCapacity)
	if err != nil {
		return err
	}
	grown := buf[:len(q.data)]
	copy(grown, q.data)
	q.data = grown
	return nil
}

// Drop removes the first n samples, shifting the remainder down to index 0.
// Dropping more samples than are buffered empties the queue.
func (q *Float) Drop(n int) {
	if n <= 0 {
		return
	}
	if n >= len(q.data) {
		q.data = q.data[:0]
		return
	}
	remaining := copy(q.data, q.data[n:])
	q.data = q.data[:remaining]
}

// Read copies up to len(dst) samples from the front of the queue into dst
// and drops them. It returns the number of samples copied.
func (q *Float) Read(dst []float32) int {
	n := copy(dst, q.data)
	q.Drop(n)
	return n
}

// PadZero appends zeros until the queue holds exactly n samples. It is a
// no-op if the queue already holds n or more samples.
func (q *Float) PadZero(n int) error {
	if len(q.data) >= n {
		return nil
	}
	pad := n - len(q.data)
	needed := len(q.data) + pad
	if needed > cap(q.data) {
		if err := q.grow(needed); err != nil {
			return err
		}
	}
	q.data = append(q.data, make([]float32, pad)...)
	return nil
}

// Reset empties the queue without releasing its backing storage.
func (q *Float) Reset() {
	q.data = q.data[:0]
}
