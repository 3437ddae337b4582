// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufpool

import (
	"sync/atomic"

	"code.hybscloud.com/simtransport/metrics"
)

// metricsReg holds the process-wide optional metrics sink, mirroring
// wire's SetMetrics/currentMetrics pair so both packages share one
// injection pattern even though they record into independent counters.
var metricsReg atomic.Pointer[metrics.Registry]

// SetMetrics installs r as the registry every Acquire call records
// pool-exhaustion events into. Pass nil to disable recording.
func SetMetrics(r *metrics.Registry) {
	metricsReg.Store(r)
}

func currentMetrics() *metrics.Registry {
	return metricsReg.Load()
}
