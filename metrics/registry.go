// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics

import "code.hybscloud.com/atomix"

// Registry holds allocation-free counters for the wire package's
// success and failure paths and bufpool's exhaustion path. The zero value is ready to use;
// a nil *Registry is also valid and every method is then a no-op.
type Registry struct {
	// Per-outcome counters on the write path.
	WritesOK          atomix.Uint64
	WriteBytes        atomix.Uint64
	WritesTooLarge    atomix.Uint64
	WritesPeerClosed  atomix.Uint64
	WritesIOError     atomix.Uint64

	// Per-outcome counters on the read path.
	ReadsOK             atomix.Uint64
	ReadBytes           atomix.Uint64
	ReadsWouldBlock     atomix.Uint64
	ReadsMalformed      atomix.Uint64
	ReadsUnsupportedVer atomix.Uint64
	ReadsTooLarge       atomix.Uint64
	ReadsBufferTooSmall atomix.Uint64
	ReadsIOError        atomix.Uint64

	// Pool pressure counters.
	PoolExhausted atomix.Uint64
}

// RecordWriteOK records a successful write of n payload bytes.
func (r *Registry) RecordWriteOK(n int) {
	if r == nil {
		return
	}
	r.WritesOK.Add(1)
	r.WriteBytes.Add(uint64(n))
}

// RecordWriteTooLarge records a write rejected for exceeding max payload.
func (r *Registry) RecordWriteTooLarge() {
	if r == nil {
		return
	}
	r.WritesTooLarge.Add(1)
}

// RecordWritePeerClosed records a write that observed an orderly peer close.
func (r *Registry) RecordWritePeerClosed() {
	if r == nil {
		return
	}
	r.WritesPeerClosed.Add(1)
}

// RecordWriteIOError records a write that failed with an underlying OS error.
func (r *Registry) RecordWriteIOError() {
	if r == nil {
		return
	}
	r.WritesIOError.Add(1)
}

// RecordReadOK records a successful read of n payload bytes.
func (r *Registry) RecordReadOK(n int) {
	if r == nil {
		return
	}
	r.ReadsOK.Add(1)
	r.ReadBytes.Add(uint64(n))
}

// RecordReadWouldBlock records a non-blocking read that made no progress.
func (r *Registry) RecordReadWouldBlock() {
	if r == nil {
		return
	}
	r.ReadsWouldBlock.Add(1)
}

// RecordReadMalformed records a read that rejected a malformed length prefix.
func (r *Registry) RecordReadMalformed() {
	if r == nil {
		return
	}
	r.ReadsMalformed.Add(1)
}

// RecordReadUnsupportedVersion records a read that rejected a wire version mismatch.
func (r *Registry) RecordReadUnsupportedVersion() {
	if r == nil {
		return
	}
	r.ReadsUnsupportedVer.Add(1)
}

// RecordReadTooLarge records a read whose declared payload exceeded max payload.
func (r *Registry) RecordReadTooLarge() {
	if r == nil {
		return
	}
	r.ReadsTooLarge.Add(1)
}

// RecordReadBufferTooSmall records a read whose caller buffer could not hold the payload.
func (r *Registry) RecordReadBufferTooSmall() {
	if r == nil {
		return
	}
	r.ReadsBufferTooSmall.Add(1)
}

// RecordReadIOError records a read that failed with an underlying OS error.
func (r *Registry) RecordReadIOError() {
	if r == nil {
		return
	}
	r.ReadsIOError.Add(1)
}

// RecordPoolExhausted records an acquire call that found no free buffer.
func (r *Registry) RecordPoolExhausted() {
	if r == nil {
		return
	}
	r.PoolExhausted.Add(1)
}
