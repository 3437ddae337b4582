// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"sync/atomic"

	"code.hybscloud.com/simtransport/metrics"
)

// metricsReg holds the process-wide optional metrics sink. A pointer
// type is used here, rather than atomix, because none of the
// ecosystem's atomic wrappers expose a pointer-width primitive; see
// DESIGN.md for the full justification.
var metricsReg atomic.Pointer[metrics.Registry]

// SetMetrics installs r as the registry every WriteMessage and
// ReadMessageInto call records into. Pass nil to disable recording.
func SetMetrics(r *metrics.Registry) {
	metricsReg.Store(r)
}

func currentMetrics() *metrics.Registry {
	return metricsReg.Load()
}
