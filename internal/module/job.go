// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/freejohn/pythond/internal/logger"
	"github.com/freejohn/pythond/internal/netdataapi"
)

// Timetable is the scheduler's per-job bookkeeping record. Freq is the
// job's update_every in seconds; Last is the wall time of the last
// successful update (zero before the first); Next is the wall time at
// which the next update becomes eligible.
type Timetable struct {
	Freq int
	Last time.Time
	Next time.Time
}

// AdvanceOnSuccess sets Next to the earliest multiple of Freq strictly
// after tEnd, per the invariant next = floor(t_end/freq + 1) * freq.
func (t *Timetable) AdvanceOnSuccess(tEnd time.Time) {
	freq := int64(t.Freq)
	n := tEnd.Unix()/freq + 1
	t.Next = time.Unix(n*freq, 0)
}

// AdvanceOnFailure pushes Next back by one full period without touching Last.
func (t *Timetable) AdvanceOnFailure() {
	t.Next = t.Next.Add(time.Duration(t.Freq) * time.Second)
}

// CallResult discriminates how a job-operation invocation ended, so the
// scheduler can dispatch on outcome without exceptions.
type CallResult int

const (
	// ResultOK: the operation returned true.
	ResultOK CallResult = iota
	// ResultFalse: the operation returned false.
	ResultFalse
	// ResultCrashed: the operation panicked.
	ResultCrashed
)

// Job wraps one Module instance with the runtime state the supervisor
// manages on its behalf: name, chart name, timetable, retry budget and a
// buffered writer so a job's output lines never interleave with another
// job's (§5: "a job's create or update call and the supervisor's
// surrounding framing lines form an atomic emission unit").
type Job struct {
	moduleName string
	name       string // "" for a single-job module
	chartName  string
	instanceID uuid.UUID

	module Module

	Timetable Timetable

	Retries     int // configured ceiling
	RetriesLeft int // current budget, refilled on each successful update

	out io.Writer
	buf *bytes.Buffer
	api *netdataapi.API

	*logger.Logger
}

// Config carries everything needed to construct a Job wrapper around an
// already-built Module. Buf and API must be the same pair the Module's
// Constructor was given, so the Module's own output and the supervisor's
// self-monitoring lines land in the same buffer and flush together.
type Config struct {
	ModuleName  string
	Name        string
	Module      Module
	UpdateEvery int
	Retries     int
	Out         io.Writer
	Buf         *bytes.Buffer
	API         *netdataapi.API
}

// NewBuffer allocates the buffer/API pair a Module's Constructor must be
// given, and that the resulting Job must be wrapped with via Config.
func NewBuffer() (*bytes.Buffer, *netdataapi.API) {
	buf := &bytes.Buffer{}
	return buf, netdataapi.New(buf)
}

// NewJob wraps cfg.Module in a Job, computing its chart name and initial
// timetable.
func NewJob(cfg Config) *Job {
	buf, api := cfg.Buf, cfg.API
	if buf == nil || api == nil {
		buf, api = NewBuffer()
	}

	j := &Job{
		moduleName:  cfg.ModuleName,
		name:        cfg.Name,
		chartName:   ChartName(cfg.ModuleName, cfg.Name),
		instanceID:  uuid.New(),
		module:      cfg.Module,
		Timetable:   Timetable{Freq: cfg.UpdateEvery},
		Retries:     cfg.Retries,
		RetriesLeft: cfg.Retries,
		out:         cfg.Out,
		buf:         buf,
		api:         api,
	}

	j.Logger = logger.New().With("module", j.moduleName, "job", j.FullName(), "instance", j.instanceID)

	return j
}

// InstanceID uniquely identifies this Job for the lifetime of the process,
// independent of its (reusable) module/job name pair.
func (j *Job) InstanceID() uuid.UUID { return j.instanceID }

// FullName is the module_name, or module_name_job_name for a multi-job module.
func (j *Job) FullName() string {
	if j.name == "" {
		return j.moduleName
	}
	return j.moduleName + "_" + j.name
}

// ChartName computes a job's chart name from its module and job name,
// per §3: module_name, or module_name + "_" + job_name.
func ChartName(moduleName, jobName string) string {
	if jobName == "" {
		return moduleName
	}
	return moduleName + "_" + jobName
}

func (j *Job) ModuleName() string { return j.moduleName }
func (j *Job) Name() string       { return j.name }
func (j *Job) ChartName() string  { return j.chartName }

// API returns the buffered protocol writer jobs and the scheduler emit
// framing lines through; nothing is visible on stdout until Flush.
func (j *Job) API() *netdataapi.API { return j.api }

// Flush copies the buffered output to the real destination atomically and
// resets the buffer for the next call.
func (j *Job) Flush() {
	_, _ = io.Copy(j.out, j.buf)
	j.buf.Reset()
}

// CallCheck invokes Check(), recovering a panic into ResultCrashed.
func (j *Job) CallCheck() (res CallResult, reason string) {
	defer func() {
		if r := recover(); r != nil {
			res, reason = ResultCrashed, fmt.Sprint(r)
		}
	}()
	if j.module.Check() {
		return ResultOK, ""
	}
	return ResultFalse, ""
}

// CallCreate invokes Create(), recovering a panic into ResultCrashed.
func (j *Job) CallCreate() (res CallResult, reason string) {
	defer func() {
		if r := recover(); r != nil {
			res, reason = ResultCrashed, fmt.Sprint(r)
		}
	}()
	if j.module.Create() {
		return ResultOK, ""
	}
	return ResultFalse, ""
}

// CallUpdate invokes Update(sinceLast), recovering a panic into ResultCrashed.
func (j *Job) CallUpdate(sinceLast int64) (res CallResult, reason string) {
	defer func() {
		if r := recover(); r != nil {
			reason = fmt.Sprint(r)
			if logger.Level.Enabled(slog.LevelDebug) {
				reason = reason + "\n" + string(debug.Stack())
			}
			res = ResultCrashed
		}
	}()
	if j.module.Update(sinceLast) {
		return ResultOK, ""
	}
	return ResultFalse, ""
}
