// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// Kind classifies why a wire operation failed.
type Kind int

const (
	// KindInvalidArgument means a configuration value was out of range,
	// e.g. SetMaxPayload above the hard cap.
	KindInvalidArgument Kind = iota
	// KindPeerClosed means the peer closed the connection in an orderly
	// way mid-frame.
	KindPeerClosed
	// KindMessageTooLarge means a declared or attempted payload exceeds
	// the configured max payload.
	KindMessageTooLarge
	// KindBufferTooSmall means the caller's buffer cannot hold the
	// incoming payload.
	KindBufferTooSmall
	// KindMalformedFrame means the length prefix is smaller than
	// HeaderSize.
	KindMalformedFrame
	// KindUnsupportedVersion means header.Version != ProtocolVersion.
	KindUnsupportedVersion
	// KindIO means an underlying OS error occurred; Err carries it.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindPeerClosed:
		return "peer closed"
	case KindMessageTooLarge:
		return "message too large"
	case KindBufferTooSmall:
		return "buffer too small"
	case KindMalformedFrame:
		return "malformed frame"
	case KindUnsupportedVersion:
		return "unsupported version"
	case KindIO:
		return "io error"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every failing wire operation
// except WouldBlock, which is reported as iox.ErrWouldBlock directly
// for ecosystem consistency with ring and bufpool.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wire: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("wire: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func kindErr(k Kind) error { return &Error{Kind: k} }

func ioErr(err error) error { return &Error{Kind: KindIO, Err: err} }

// ErrWouldBlock is returned by ReadMessageInto when a non-blocking
// socket would have blocked before any byte of the frame was consumed.
// Alias of iox.ErrWouldBlock for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is the wire WouldBlock sentinel.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// KindOf reports the Kind of err if it (or a wrapped cause) is a
// *Error, and ok=false otherwise.
func KindOf(err error) (k Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
