// SPDX-License-Identifier: GPL-3.0-or-later

// Package module defines the contract the supervisor drives every
// collector job through, and the per-job runtime state (timetable, retry
// budget, buffered output) the scheduler manipulates.
package module

import (
	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/netdataapi"
)

// Module is the three-operation contract every collector job exposes to
// the supervisor. Per-module defaults for update_every, priority and
// retries come from the registered Creator's Attributes (see
// Creator.Attribute), not from the constructed Module.
type Module interface {
	// Check probes prerequisites. A false return means the job is not
	// viable and is dropped before any chart is declared.
	Check() bool

	// Create emits any module-specific chart-definition lines (other than
	// the per-job runtime chart the supervisor emits itself). A false
	// return drops the job.
	Create() bool

	// Update produces one round of metric lines on stdout. sinceLast is
	// the number of microseconds elapsed since the previous successful
	// update, or 0 when the job has not yet had a successful update (which
	// includes the very first update of the process). A false
	// return consumes one unit of retry budget rather than dropping the
	// job outright.
	Update(sinceLast int64) bool
}

// AttributeProvider lets a module declare its own defaults for the three
// required configuration keys. The config materializer consults it after
// the config file's top-level mapping and before the process-wide base
// configuration (§4.3 precedence).
type AttributeProvider interface {
	Attribute(key string) (any, bool)
}

// Constructor builds one Module instance from its materialized
// configuration, its job name (confgroup.NoJobName for a single-job
// module), and the protocol writer it must use for every chart it declares
// and every line of data it reports — never os.Stdout directly, so the job
// wrapper can buffer and flush atomically.
type Constructor func(cfg confgroup.JobConfig, jobName string, api *netdataapi.API) (Module, error)

// Creator is what a collector registers under its file-stem name: a way to
// build jobs, plus the optional attribute bag §4.3 reads module-level
// defaults from.
type Creator struct {
	Create     Constructor
	Attributes map[string]any
}

// Attribute implements AttributeProvider by delegating to the static
// Attributes map a Creator was registered with, so the materializer can
// treat every Creator uniformly regardless of whether the constructed
// Module itself implements AttributeProvider.
func (c Creator) Attribute(key string) (any, bool) {
	v, ok := c.Attributes[key]
	return v, ok
}
