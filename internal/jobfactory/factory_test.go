// SPDX-License-Identifier: GPL-3.0-or-later

package jobfactory

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/env"
	"github.com/freejohn/pythond/internal/loader"
	"github.com/freejohn/pythond/internal/module"
	"github.com/freejohn/pythond/internal/netdataapi"
)

type stubModule struct{}

func (stubModule) Check() bool       { return true }
func (stubModule) Create() bool      { return true }
func (stubModule) Update(int64) bool { return true }

func TestBuild_OneJobPerModule(t *testing.T) {
	loaded := []loader.LoadedModule{
		{Name: "example", Creator: module.Creator{
			Create: func(_ confgroup.JobConfig, _ string, _ *netdataapi.API) (module.Module, error) {
				return stubModule{}, nil
			},
		}},
	}
	settings := &env.Settings{Base: env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}}

	var out bytes.Buffer
	jobs := Build(loaded, map[string]map[string]any{}, settings, &out)

	require.Len(t, jobs, 1)
	assert.Equal(t, "example", jobs[0].ModuleName())
}

func TestBuild_SkipsFailingConstructor(t *testing.T) {
	loaded := []loader.LoadedModule{
		{Name: "broken", Creator: module.Creator{
			Create: func(_ confgroup.JobConfig, _ string, _ *netdataapi.API) (module.Module, error) {
				return nil, errors.New("missing credentials")
			},
		}},
	}
	settings := &env.Settings{Base: env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}}

	var out bytes.Buffer
	jobs := Build(loaded, map[string]map[string]any{}, settings, &out)

	assert.Empty(t, jobs)
}

func TestBuild_MultiJobModule(t *testing.T) {
	loaded := []loader.LoadedModule{
		{Name: "web", Creator: module.Creator{
			Create: func(_ confgroup.JobConfig, _ string, _ *netdataapi.API) (module.Module, error) {
				return stubModule{}, nil
			},
		}},
	}
	rawConfigs := map[string]map[string]any{
		"web": {
			"job1": map[string]any{"url": "http://localhost:1"},
			"job2": map[string]any{"url": "http://localhost:2"},
		},
	}
	settings := &env.Settings{Base: env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}}

	var out bytes.Buffer
	jobs := Build(loaded, rawConfigs, settings, &out)

	require.Len(t, jobs, 2)
}

func TestBuild_DebugOverrideUpdateEvery(t *testing.T) {
	loaded := []loader.LoadedModule{
		{Name: "example", Creator: module.Creator{
			Create: func(_ confgroup.JobConfig, _ string, _ *netdataapi.API) (module.Module, error) {
				return stubModule{}, nil
			},
			Attributes: map[string]any{"update_every": 3},
		}},
	}
	settings := &env.Settings{
		Base:                env.BaseConfig{UpdateEvery: 7, Priority: 90000, Retries: 10},
		Debug:               true,
		OverrideUpdateEvery: true,
	}

	var out bytes.Buffer
	jobs := Build(loaded, map[string]map[string]any{}, settings, &out)

	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].Timetable.Freq)
}
