// SPDX-License-Identifier: GPL-3.0-or-later

// Package example is a minimal demonstration collector: one chart, one
// dimension, a random walk with steps of at most 10 in either direction
// (the value itself is not clamped). It exists to exercise the supervisor
// end to end without depending on any real data source.
package example

import (
	"math/rand"

	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/module"
	"github.com/freejohn/pythond/internal/netdataapi"
)

func init() {
	module.Register("example", module.Creator{
		Create: New,
	})
}

type Example struct {
	api   *netdataapi.API
	value int64
}

// New satisfies module.Constructor.
func New(_ confgroup.JobConfig, _ string, api *netdataapi.API) (module.Module, error) {
	return &Example{api: api}, nil
}

func (e *Example) Check() bool { return true }

func (e *Example) Create() bool {
	e.api.CHART(netdataapi.ChartOpts{
		TypeID:    "example",
		ID:        "random",
		Title:     "A Random Number",
		Units:     "random",
		Family:    "random",
		Context:   "example.random",
		ChartType: "line",
		Priority:  70000,
	})
	e.api.DIMENSION("random0", "random0", "absolute", 1, 1, "")
	return true
}

func (e *Example) Update(_ int64) bool {
	e.value += rand.Int63n(21) - 10

	e.api.BEGIN("example", "random", 0)
	e.api.SET("random0", e.value)
	e.api.END()

	return true
}
