// SPDX-License-Identifier: GPL-3.0-or-later

// Package testrandom is a load-generating collector: it creates a
// configurable number of charts, each with a configurable number of
// dimensions, and feeds them random data every update. It exists to
// exercise the scheduler with more than one job and more than one chart
// per job, and to demonstrate a module reading its own config keys.
package testrandom

import (
	"fmt"
	"math/rand"

	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/confopt"
	"github.com/freejohn/pythond/internal/module"
	"github.com/freejohn/pythond/internal/netdataapi"
)

const (
	defaultCharts     = 1
	defaultDimensions = 4
)

func init() {
	module.Register("testrandom", module.Creator{
		Create: New,
	})
}

type TestRandom struct {
	api    *netdataapi.API
	charts int
	dims   int
}

// New satisfies module.Constructor. It reads "charts" and "dimensions"
// straight out of the job's own config, falling back to fixed defaults
// when absent or malformed.
func New(cfg confgroup.JobConfig, _ string, api *netdataapi.API) (module.Module, error) {
	t := &TestRandom{api: api, charts: defaultCharts, dims: defaultDimensions}

	if v, ok := confopt.ToInt(cfg["charts"]); ok && v > 0 {
		t.charts = v
	}
	if v, ok := confopt.ToInt(cfg["dimensions"]); ok && v > 0 {
		t.dims = v
	}

	return t, nil
}

func (t *TestRandom) Check() bool { return true }

func (t *TestRandom) Create() bool {
	for c := 0; c < t.charts; c++ {
		t.api.CHART(netdataapi.ChartOpts{
			TypeID:    "testrandom",
			ID:        chartID(c),
			Title:     fmt.Sprintf("Random Numbers Chart %d", c),
			Units:     "random",
			Family:    "random",
			Context:   "testrandom.random",
			ChartType: "line",
			Priority:  70000 + c,
		})
		for d := 0; d < t.dims; d++ {
			t.api.DIMENSION(dimID(d), dimID(d), "absolute", 1, 1, "")
		}
	}
	return true
}

func (t *TestRandom) Update(_ int64) bool {
	for c := 0; c < t.charts; c++ {
		t.api.BEGIN("testrandom", chartID(c), 0)
		for d := 0; d < t.dims; d++ {
			t.api.SET(dimID(d), rand.Int63n(1000))
		}
		t.api.END()
	}
	return true
}

func chartID(c int) string { return fmt.Sprintf("random%d", c) }
func dimID(d int) string   { return fmt.Sprintf("random%d", d) }
