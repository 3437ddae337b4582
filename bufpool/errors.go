// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufpool

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrInvalidArgument is returned by New when count or size is out of
// range, or by Release when the buffer did not come from this pool.
var ErrInvalidArgument = errors.New("bufpool: invalid argument")

// ErrOutOfMemory is returned by Acquire when the pool is exhausted.
var ErrOutOfMemory = errors.New("bufpool: exhausted")

// MaxBufferSize is the hard cap on a single buffer's size (§4.2: "a
// hard cap of 2 MiB per buffer; larger S is rejected at creation").
const MaxBufferSize = 2 << 20

// IsWouldBlock reports whether err signals pool exhaustion, delegating
// to iox for wrapped ecosystem sentinels.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrOutOfMemory) || iox.IsWouldBlock(err)
}
