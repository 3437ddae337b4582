// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrFull is returned by Enqueue when the ring has no producible slot.
//
// This is a control flow signal, not a failure. Callers should back off
// and retry, or treat it as backpressure.
var ErrFull = errors.New("ring: full")

// ErrEmpty is returned by Dequeue when the ring has no consumable slot.
//
// This is a control flow signal, not a failure.
var ErrEmpty = errors.New("ring: empty")

// ErrInvalidArgument is returned by New when capacity is not a power of
// two, or is smaller than the minimum capacity of 2.
var ErrInvalidArgument = errors.New("ring: capacity must be a power of two >= 2")

// IsWouldBlock reports whether err is ErrFull or ErrEmpty: the ring could
// not make progress without waiting. Delegates classification of any
// wrapped ecosystem sentinel to iox.IsWouldBlock.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrFull) || errors.Is(err, ErrEmpty) || iox.IsWouldBlock(err)
}
