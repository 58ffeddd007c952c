// SPDX-License-Identifier: GPL-3.0-or-later

// Package netdataapi writes the line-oriented protocol the host monitoring
// agent reads from the supervisor's standard output.
// See: https://learn.netdata.cloud/docs/agent/plugins.d#the-output-of-the-plugin
package netdataapi

import (
	"io"
	"strconv"
)

// API is a thin, allocation-light writer for the plugin wire protocol.
type API struct {
	io.Writer
}

const quotes = "' '"

var (
	end     = []byte("END\n")
	newLine = []byte("\n")
	disable = []byte("DISABLE\n")
)

// New creates an API instance writing to w. Panics if w is nil.
func New(w io.Writer) *API {
	if w == nil {
		panic("writer cannot be nil")
	}
	return &API{w}
}

// ChartOpts carries the fields of a CHART declaration line.
type ChartOpts struct {
	TypeID      string
	ID          string
	Name        string
	Title       string
	Units       string
	Family      string
	Context     string
	ChartType   string
	Priority    int
	UpdateEvery int
	Options     string
	Plugin      string
	Module      string
}

// CHART declares a chart. A job may declare any number of charts during create().
func (a *API) CHART(opts ChartOpts) {
	_, _ = a.Write([]byte("CHART " + "'" +
		opts.TypeID + "." + opts.ID + quotes +
		opts.Name + quotes +
		opts.Title + quotes +
		opts.Units + quotes +
		opts.Family + quotes +
		opts.Context + quotes +
		opts.ChartType + quotes +
		strconv.Itoa(opts.Priority) + quotes +
		strconv.Itoa(opts.UpdateEvery) + quotes +
		opts.Options + quotes +
		opts.Plugin + quotes +
		opts.Module + "'\n"))
}

// DIMENSION adds a dimension to the most recently declared chart.
func (a *API) DIMENSION(id, name, algorithm string, multiplier, divisor int, options string) {
	_, _ = a.Write([]byte("DIMENSION '" +
		id + quotes +
		name + quotes +
		algorithm + quotes +
		strconv.Itoa(multiplier) + quotes +
		strconv.Itoa(divisor) + quotes +
		options + "'\n"))
}

// BEGIN opens a data-collection frame for typeID.id, sinceLast microseconds
// after the previous frame (0 on the very first frame of a job). The token
// is always written, including the 0 case, since the host agent's parser
// treats a BEGIN with no second token differently from one with an
// explicit 0.
func (a *API) BEGIN(typeID, id string, sinceLast int64) {
	_, _ = a.Write([]byte("BEGIN '" + typeID + "." + id + "' " + strconv.FormatInt(sinceLast, 10) + "\n"))
}

// SET sets the value of a dimension within the open frame.
func (a *API) SET(id string, value int64) {
	_, _ = a.Write([]byte("SET '" + id + "' = " + strconv.FormatInt(value, 10) + "\n"))
}

// END closes the open data-collection frame.
func (a *API) END() {
	_, _ = a.Write(end)
}

// EMPTYLINE writes a blank separator line, terminating a CHART/DIMENSION block.
func (a *API) EMPTYLINE() {
	_, _ = a.Write(newLine)
}

// DISABLE tells the host agent not to relaunch this plugin.
func (a *API) DISABLE() {
	_, _ = a.Write(disable)
}
