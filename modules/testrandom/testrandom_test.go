// SPDX-License-Identifier: GPL-3.0-or-later

package testrandom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/netdataapi"
)

func TestNew_DefaultsAndOverrides(t *testing.T) {
	var buf bytes.Buffer
	api := netdataapi.New(&buf)

	mod, err := New(confgroup.JobConfig{"charts": 3, "dimensions": 2}, "", api)
	require.NoError(t, err)

	tr := mod.(*TestRandom)
	assert.Equal(t, 3, tr.charts)
	assert.Equal(t, 2, tr.dims)
}

func TestNew_DefaultsWhenUnset(t *testing.T) {
	var buf bytes.Buffer
	api := netdataapi.New(&buf)

	mod, err := New(confgroup.JobConfig{}, "", api)
	require.NoError(t, err)

	tr := mod.(*TestRandom)
	assert.Equal(t, defaultCharts, tr.charts)
	assert.Equal(t, defaultDimensions, tr.dims)
}

func TestTestRandom_CreateAndUpdate(t *testing.T) {
	var buf bytes.Buffer
	api := netdataapi.New(&buf)

	mod, err := New(confgroup.JobConfig{"charts": 2, "dimensions": 2}, "", api)
	require.NoError(t, err)

	require.True(t, mod.Create())
	assert.Equal(t, 2, strings.Count(buf.String(), "CHART "))

	buf.Reset()
	require.True(t, mod.Update(0))
	assert.Equal(t, 2, strings.Count(buf.String(), "BEGIN "))
}
