// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/simtransport/internal/cacheline"
)

// Ring is a lock-free, bounded MPMC queue of elements of type T.
//
// Capacity is fixed at construction and always a power of two. Ring is
// safe for concurrent use by any number of producer and consumer
// goroutines; see the package doc for the single-consumer exceptions
// (Peek, PeekAt, Advance).
type Ring[T any] struct {
	_        cacheline.Pad
	tail     atomix.Uint64 // producer cursor
	_        cacheline.Pad
	head     atomix.Uint64 // consumer cursor
	_        cacheline.Pad
	buffer   []slot[T]
	mask     uint64
	capacity uint64
}

type slot[T any] struct {
	seq atomix.Uint64
	item T
	_    cacheline.PadAfter8
}

// New creates a Ring with the given capacity, which must be a power of
// two no smaller than 2. Returns ErrInvalidArgument otherwise.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, ErrInvalidArgument
	}

	n := uint64(capacity)
	r := &Ring[T]{
		buffer:   make([]slot[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		r.buffer[i].seq.StoreRelaxed(i)
	}
	return r, nil
}

// Cap returns the ring's fixed capacity.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}

// Enqueue publishes item to the ring.
//
// Returns ErrFull if no slot is currently producible. Never blocks and
// never allocates.
func (r *Ring[T]) Enqueue(item T) error {
	sw := spin.Wait{}
	for {
		tail := r.tail.LoadAcquire()
		s := &r.buffer[tail&r.mask]
		seq := s.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		switch {
		case diff == 0:
			if r.tail.CompareAndSwapAcqRel(tail, tail+1) {
				s.item = item
				s.seq.StoreRelease(tail + 1)
				return nil
			}
		case diff < 0:
			return ErrFull
		}
		sw.Once()
	}
}

// Dequeue removes and returns the next element in FIFO order.
//
// Returns ErrEmpty if no slot is currently consumable. Never blocks and
// never allocates.
func (r *Ring[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := r.head.LoadAcquire()
		s := &r.buffer[head&r.mask]
		seq := s.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		switch {
		case diff == 0:
			if r.head.CompareAndSwapAcqRel(head, head+1) {
				item := s.item
				var zero T
				s.item = zero
				s.seq.StoreRelease(head + r.capacity)
				return item, nil
			}
		case diff < 0:
			var zero T
			return zero, ErrEmpty
		}
		sw.Once()
	}
}

// Count returns an approximate number of queued elements: tail minus
// head, clamped to zero. Not linearizable; advisory only.
func (r *Ring[T]) Count() int {
	tail := r.tail.LoadAcquire()
	head := r.head.LoadAcquire()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Peek returns the element at the current head without removing it.
//
// Single-consumer helper: behavior is only defined when no concurrent
// Dequeue is in flight.
func (r *Ring[T]) Peek() (T, bool) {
	return r.PeekAt(0)
}

// PeekAt returns the i-th element ahead of the current head without
// removing it, where i=0 is the next element Dequeue would return.
//
// Single-consumer helper: behavior is only defined when no concurrent
// Dequeue is in flight.
func (r *Ring[T]) PeekAt(i int) (T, bool) {
	var zero T
	if i < 0 || uint64(i) >= r.capacity {
		return zero, false
	}
	head := r.head.LoadAcquire()
	pos := head + uint64(i)
	s := &r.buffer[pos&r.mask]
	seq := s.seq.LoadAcquire()
	if int64(seq)-int64(pos+1) != 0 {
		return zero, false
	}
	return s.item, true
}

// Advance consumes n elements without returning them, equivalent to n
// calls to Dequeue that discard their result but stop at the first
// empty slot.
//
// Single-consumer helper: behavior is only defined when no concurrent
// Dequeue is in flight. Returns the number of elements actually
// advanced over.
func (r *Ring[T]) Advance(n int) int {
	advanced := 0
	for ; advanced < n; advanced++ {
		if _, err := r.Dequeue(); err != nil {
			break
		}
	}
	return advanced
}
