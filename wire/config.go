// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "code.hybscloud.com/atomix"

// DefaultMaxPayload is the payload cap applied when SetMaxPayload has
// never been called, or has been called with n == 0.
const DefaultMaxPayload = 2 << 20

// HardMaxPayload is the largest payload cap SetMaxPayload will accept.
const HardMaxPayload = 64 << 20

// maxPayload is process-wide state, per the distilled spec's §4.3:
// "a single process-wide max_payload". It is guarded by an atomic
// rather than a hidden package global behind a mutex, so MaxPayload
// is lock-free on the hot path (every ReadMessageInto call reads it).
var maxPayload atomix.Uint32

func init() {
	maxPayload.StoreRelease(DefaultMaxPayload)
}

// SetMaxPayload sets the process-wide payload cap. n == 0 restores
// DefaultMaxPayload. Returns KindInvalidArgument if n exceeds
// HardMaxPayload.
func SetMaxPayload(n int) error {
	if n == 0 {
		maxPayload.StoreRelease(DefaultMaxPayload)
		return nil
	}
	if n < 0 || n > HardMaxPayload {
		return kindErr(KindInvalidArgument)
	}
	maxPayload.StoreRelease(uint32(n))
	return nil
}

// MaxPayload returns the current process-wide payload cap.
func MaxPayload() int {
	return int(maxPayload.LoadAcquire())
}
