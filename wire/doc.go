// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wire implements the length-prefixed message framing layer:
// a 4-byte big-endian length prefix, an 8-byte versioned header, and a
// payload, written to or read from a stream socket file descriptor.
//
// # Wire format
//
//	offset  size  field
//	  0      4    length_prefix  = sizeof(header) + payload_len
//	  4      2    header.version = 0x0001
//	  6      1    header.msg_type
//	  7      1    header.flags
//	  8      4    header.payload_len
//	 12      N    payload
//
// All multi-byte integers are big-endian. Flags are opaque to this
// package; it passes them through unexamined.
//
// # Blocking model
//
// WriteMessage issues one scatter write (length prefix, header,
// payload) and falls back to a short-write retry loop only when the
// kernel does not accept the whole frame in one call; the retry loop
// handles EINTR internally and is otherwise blocking.
//
// ReadMessageInto implements the atomic read contract for the length
// prefix: a non-blocking socket that would block before any byte of
// the frame is consumed returns ErrWouldBlock without side effects,
// and so does one on which fewer than 4 bytes of the length prefix
// have arrived. Once the whole length prefix is available, it and the
// rest of the frame are read with an internal blocking-style retry
// loop; this is not
// atomic across EAGAIN the way the length-prefix peek is, which is
// the documented contract for callers that do not drive reads from a
// reactor (see the reactor package for the edge-triggered path).
//
// # Configuration
//
// max_payload is process-wide, defaulting to 2 MiB with a hard cap of
// 64 MiB, set with SetMaxPayload and read with MaxPayload.
package wire
