// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package cacheline

// Size is the L1 cache line size for x86-64 architectures.
const Size = 64
