// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bufpool provides a zero-copy, fixed-count, fixed-size byte
// buffer pool.
//
// A Pool owns one contiguous backing region of N*S bytes, cache-line
// aligned, and hands out non-overlapping S-byte windows into it as
// Buffer handles. Acquire and Release are lock-free, backed by a
// ring.Ring[int] of free indices rather than a bare free-list pointer,
// so a Buffer always knows which Pool it came from.
//
//	p, _ := bufpool.New(1024, 4096)
//	buf, err := p.Acquire()
//	// ... write into buf.Bytes(), send it, etc.
//	_ = p.Release(buf)
//
// Acquired buffers are not zeroed; callers must write before reading.
// A single Pool is intended for single-producer/single-consumer use;
// transport.Transport widens this to multiple concurrent callers with
// its own user-counter guard (see the transport package).
package bufpool
