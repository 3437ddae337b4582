// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a lock-free, bounded, sequence-stamped MPMC
// queue of pointer-sized elements.
//
// Ring is the core primitive of the transport: a fixed-capacity FIFO
// used both as the free-index list backing a buffer pool and as the
// building block for any higher-level completion queue a caller wants
// to build on top of the transport. Capacity must be a power of two.
//
// # Algorithm
//
// Each slot carries a sequence stamp alongside its element. A slot is
// producible when its stamp equals the current tail cursor, and
// consumable when its stamp equals head+1. Producers and consumers
// race to CAS their respective cursor forward; the slot's stamp store
// is the release operation that hands the element off, and the
// paired load is the acquire that receives it. This is the same
// algorithm as Dmitry Vyukov's bounded MPMC queue.
//
//	q, _ := ring.New[int](1024)
//	_ = q.Enqueue(7)
//	v, err := q.Dequeue()
//
// # Thread Safety
//
// Enqueue and Dequeue are safe for any number of concurrent producer
// and consumer goroutines. Peek, PeekAt, and Advance are single-consumer
// helpers: their results are only meaningful when called from the one
// goroutine that also calls Dequeue, with no other concurrent consumer.
//
// # Error Handling
//
// Enqueue returns ErrFull when the ring has no producible slot, and
// Dequeue returns ErrEmpty when it has no consumable slot. Both are
// control-flow signals, not failures: retry with backoff, do not
// propagate them as fatal errors. New returns ErrInvalidArgument if
// capacity is not a power of two or is smaller than 2.
package ring
