// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufpool

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iobuf"

	"code.hybscloud.com/simtransport/ring"
)

// Pool is a fixed-count, fixed-size byte buffer pool.
//
// The intended concurrency mode for a single Pool is one producer and
// one consumer thread (§4.2 Policy); transport.Transport widens this
// for its two pools with its own acquire/release user
// counter.
type Pool struct {
	backing []byte
	bufSize int
	count   int
	free    *ring.Ring[int]
	owned   []atomix.Bool
}

// New creates a Pool of count buffers of size bytes each.
//
// count must be at least 1; size must be between 1 and MaxBufferSize.
// The backing region is one contiguous, cache-line-aligned allocation
// of count*size bytes.
func New(count, size int) (*Pool, error) {
	if count < 1 || size < 1 || size > MaxBufferSize {
		return nil, ErrInvalidArgument
	}

	free, err := ring.New[int](roundToPow2(count))
	if err != nil {
		return nil, err
	}

	p := &Pool{
		backing: iobuf.CacheLineAlignedMem(count * size),
		bufSize: size,
		count:   count,
		free:    free,
		owned:   make([]atomix.Bool, count),
	}
	for i := range count {
		if err := p.free.Enqueue(i); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// BufSize returns the uniform size of every buffer in the pool.
func (p *Pool) BufSize() int {
	return p.bufSize
}

// FreeCount returns an approximate count of currently free buffers.
// Advisory only; not linearizable (see ring.Count).
func (p *Pool) FreeCount() int {
	return p.free.Count()
}

// Acquire returns an exclusively-owned Buffer, or ErrOutOfMemory if the
// pool is exhausted. The returned buffer is not zeroed.
func (p *Pool) Acquire() (*Buffer, error) {
	idx, err := p.free.Dequeue()
	if err != nil {
		currentMetrics().RecordPoolExhausted()
		return nil, ErrOutOfMemory
	}
	p.owned[idx].StoreRelease(true)
	start := idx * p.bufSize
	return &Buffer{
		pool:  p,
		index: idx,
		data:  p.backing[start : start+p.bufSize : start+p.bufSize],
	}, nil
}

// Release returns ownership of buf to the pool.
//
// Release of a buffer not acquired from this pool, or already
// released, is a contract violation (§4.2): it returns
// ErrInvalidArgument rather than touching the free list, but detection
// is best-effort and not guaranteed for a pointer forged to look like
// a valid handle.
func (p *Pool) Release(buf *Buffer) error {
	if buf == nil || buf.pool != p || buf.index < 0 || buf.index >= p.count {
		return ErrInvalidArgument
	}
	if !p.owned[buf.index].CompareAndSwapAcqRel(true, false) {
		return ErrInvalidArgument
	}
	buf.data = nil
	return p.free.Enqueue(buf.index)
}

// roundToPow2 rounds n up to the next power of two, minimum 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
