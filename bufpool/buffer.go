// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufpool

// Buffer is an exclusively-owned window into a Pool's backing region.
//
// A Buffer tracks its pool identity so Release can reject a pointer
// that did not come from the pool it is handed to, instead of the
// bare-pointer contract the distilled spec warns against.
type Buffer struct {
	pool  *Pool
	index int
	data  []byte
}

// Bytes returns the buffer's backing window. The slice is valid only
// between Acquire and the matching Release; using it afterward is a
// use-after-free bug in the caller, not something this package can
// detect.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the buffer's fixed size, equal to the owning pool's
// BufSize.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Slice returns the first n bytes of the buffer, for callers that
// acquired a full-size buffer but only filled part of it (e.g. a
// received payload shorter than BufSize).
func (b *Buffer) Slice(n int) []byte {
	return b.data[:n]
}
