// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transport composes bufpool and wire into the
// send_message/receive_message operations: a pair of buffer pools
// (one for outbound, one for inbound traffic) guarded by a shutdown
// barrier so Shutdown can retire a Transport only once every
// in-flight caller has released its buffer.
//
// Each Init call creates an independent Transport with its own pools;
// one Transport can be shared by every goroutine that calls
// SendMessage/RecvMessage, and it is not a per-connection object. AcquireTX/AcquireRX and ReleaseTX/ReleaseRX
// expose the raw buffer-lifecycle primitives for callers that want to
// build a message in place (e.g. to avoid a copy before a zero-copy
// send); SendMessage/RecvMessage wrap the common case of one buffer
// per call.
package transport
