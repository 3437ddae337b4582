// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package racedetect

// Enabled is true when the race detector is active. Tests for the
// sequence-stamped ring use this to skip concurrent cases that trigger
// false positives: the race detector cannot see the happens-before edge
// carried by an acquire load on a slot's sequence stamp.
const Enabled = true
