// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"fmt"
	"time"

	"github.com/freejohn/pythond/internal/netdataapi"
)

// selfMonTypeID, selfMonFamily, selfMonContext and selfMonPriority describe the fixed self-monitoring
// chart every job reports its own run time under, independent of whatever
// charts the module itself creates.
const (
	selfMonTypeID   = "netdata"
	selfMonFamily   = "python.d"
	selfMonContext  = "netdata.plugin_python"
	selfMonPriority = 145000
)

// RunCreate drives the create phase and, on success, defines the
// self-monitoring chart that reports this job's own execution time. The
// whole block is buffered and flushed atomically so it never interleaves
// with another job's output.
func (j *Job) RunCreate() (res CallResult, reason string) {
	res, reason = j.CallCreate()
	if res != ResultOK {
		return res, reason
	}

	j.api.CHART(netdataapi.ChartOpts{
		TypeID:      selfMonTypeID,
		ID:          "plugin_pythond_" + j.chartName,
		Title:       fmt.Sprintf("Execution time for %s plugin", j.chartName),
		Units:       "milliseconds / run",
		Family:      selfMonFamily,
		Context:     selfMonContext,
		ChartType:   "area",
		Priority:    selfMonPriority,
		UpdateEvery: j.Timetable.Freq,
	})
	j.api.DIMENSION("run_time", "run time", "absolute", 1, 1, "")
	j.api.EMPTYLINE()
	j.Flush()

	return ResultOK, ""
}

// RunUpdate drives one update phase, measuring its wall-clock duration.
// Only a successful update reports that duration through the
// self-monitoring chart and flushes it; a false or crashed result produces
// no runtime frame, matching the scheduler's retry bookkeeping. sinceLast
// is the number of microseconds since the previous successful update, or 0
// for the first one.
func (j *Job) RunUpdate(sinceLast int64) (res CallResult, reason string) {
	start := time.Now()
	res, reason = j.CallUpdate(sinceLast)
	elapsedMs := time.Since(start).Milliseconds()

	if res != ResultOK {
		return res, reason
	}

	j.api.BEGIN(selfMonTypeID, "plugin_pythond_"+j.chartName, sinceLast)
	j.api.SET("run_time", elapsedMs)
	j.api.END()
	j.api.EMPTYLINE()
	j.Flush()

	return res, reason
}
