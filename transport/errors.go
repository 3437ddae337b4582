// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import "errors"

// ErrShuttingDown is returned by AcquireTX/AcquireRX (and therefore by
// SendMessage/RecvMessage) once Shutdown has been called, rather than
// letting a new caller race a pool that is being torn down.
var ErrShuttingDown = errors.New("transport: shutting down")

// ErrInvalidArgument is returned by Init for an out-of-range buffer
// count or size.
var ErrInvalidArgument = errors.New("transport: invalid argument")
