// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cacheline provides the CPU L1 cache line size for the current
// architecture, used to pad hot shared fields against false sharing.
package cacheline

// Pad is a full cache line of filler, placed between hot fields that are
// written by different goroutines.
type Pad [Size]byte

// PadAfter8 pads out the remainder of a cache line following an 8-byte field.
type PadAfter8 [Size - 8]byte
