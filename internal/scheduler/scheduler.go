// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler drives every loaded job through its check/create/update
// lifecycle on a single goroutine, multiplexing heterogeneous update
// frequencies onto one shared stdout stream.
package scheduler

import (
	"context"
	"io"
	"time"

	"github.com/freejohn/pythond/internal/logger"
	"github.com/freejohn/pythond/internal/module"
	"github.com/freejohn/pythond/internal/netdataapi"
)

// ErrNoJobsLeft is the fatal condition raised once every job has been
// checked, created or retried into removal and none remain runnable.
type ErrNoJobsLeft struct{}

func (ErrNoJobsLeft) Error() string { return "no jobs left to run" }

// Runner owns the live job list and the shared stdout sink every job's
// buffered output is flushed onto.
type Runner struct {
	out io.Writer
	log *logger.Logger

	jobs []*module.Job
}

// New returns a Runner over jobs; call Check and then Create on it before Run.
func New(out io.Writer, jobs []*module.Job) *Runner {
	return &Runner{
		out:  out,
		log:  logger.New(),
		jobs: jobs,
	}
}

// Check runs the check phase for every job, dropping the ones that fail or
// panic. It returns ErrNoJobsLeft if none survive.
func (r *Runner) Check() error {
	survivors := r.jobs[:0]
	for _, j := range r.jobs {
		res, reason := j.CallCheck()
		switch res {
		case module.ResultOK:
			survivors = append(survivors, j)
		case module.ResultFalse:
			j.Info("check() function reports failure.")
		case module.ResultCrashed:
			j.Errorf("misbehaving. Reason: %s", reason)
		}
	}
	r.jobs = survivors

	if len(r.jobs) == 0 {
		return ErrNoJobsLeft{}
	}
	return nil
}

// Create runs the create phase for every job, dropping the ones that fail
// or panic; a survivor's self-monitoring chart is declared as a side effect
// of RunCreate. It returns ErrNoJobsLeft if none survive.
func (r *Runner) Create() error {
	survivors := r.jobs[:0]
	for _, j := range r.jobs {
		res, reason := j.RunCreate()
		switch res {
		case module.ResultOK:
			survivors = append(survivors, j)
		case module.ResultFalse:
			j.Error("create() function reports failure.")
		case module.ResultCrashed:
			j.Errorf("misbehaving. Reason: %s", reason)
		}
	}
	r.jobs = survivors

	if len(r.jobs) == 0 {
		return ErrNoJobsLeft{}
	}
	return nil
}

// Run executes the scheduling loop until ctx is cancelled or every job has
// been removed, in which case it returns ErrNoJobsLeft. Every pass visits
// the live job list in stable order, runs whichever jobs are due, and
// sleeps until the earliest next deadline across the jobs that survived.
func (r *Runner) Run(ctx context.Context) error {
	for {
		nextRuns, err := r.pass(time.Now())
		if err != nil {
			return err
		}

		d := time.Until(earliest(nextRuns))
		if d < 0 {
			d = 0
		}

		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// pass runs update_one for every live job and returns the Next deadline of
// each survivor, so Run can sleep until the earliest one.
func (r *Runner) pass(now time.Time) ([]time.Time, error) {
	survivors := r.jobs[:0]
	var nextRuns []time.Time

	for _, j := range r.jobs {
		tStart := now
		if j.Timetable.Next.After(tStart) {
			survivors = append(survivors, j)
			nextRuns = append(nextRuns, j.Timetable.Next)
			continue
		}

		sinceLast := sinceLastMicro(j.Timetable.Last, tStart)
		res, reason := j.RunUpdate(sinceLast)

		switch res {
		case module.ResultCrashed:
			// A crash stops the job unconditionally, bypassing the retry
			// budget entirely (§7: raised failure is its own category).
			j.Errorf("misbehaving. Reason: %s", reason)
		case module.ResultFalse:
			j.Timetable.AdvanceOnFailure()
			j.RetriesLeft--
			if j.RetriesLeft < 0 {
				j.Error("update() function reports failure.")
				continue
			}
			survivors = append(survivors, j)
			nextRuns = append(nextRuns, j.Timetable.Next)
		case module.ResultOK:
			j.Timetable.Last = tStart
			j.Timetable.AdvanceOnSuccess(time.Now())
			j.RetriesLeft = j.Retries
			survivors = append(survivors, j)
			nextRuns = append(nextRuns, j.Timetable.Next)
		}
	}
	r.jobs = survivors

	if len(r.jobs) == 0 {
		return nil, ErrNoJobsLeft{}
	}
	return nextRuns, nil
}

// earliest returns the smallest time in times, or now if times is empty
// (defensive: pass never returns with an empty slice and no error).
func earliest(times []time.Time) time.Time {
	if len(times) == 0 {
		return time.Now()
	}
	min := times[0]
	for _, t := range times[1:] {
		if t.Before(min) {
			min = t
		}
	}
	return min
}

func sinceLastMicro(last, tStart time.Time) int64 {
	if last.IsZero() {
		return 0
	}
	return tStart.Sub(last).Microseconds()
}

// Disable writes the plugin-wide DISABLE command, telling the host agent
// not to restart this plugin instance.
func Disable(out io.Writer) {
	netdataapi.New(out).DISABLE()
}
