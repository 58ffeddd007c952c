// SPDX-License-Identifier: GPL-3.0-or-later

package materializer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/env"
	"github.com/freejohn/pythond/internal/module"
)

func TestMaterialize_SingleJobNoFile(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}
	creator := module.Creator{}

	mc := Materialize(nil, creator, base)

	assert.Len(t, mc, 1)
	jc := mc[confgroup.NoJobName]
	assert.Equal(t, 1, jc.UpdateEvery())
	assert.Equal(t, 90000, jc.Priority())
	assert.Equal(t, 10, jc.Retries())
}

func TestMaterialize_SingleJobFileOverride(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}
	creator := module.Creator{}

	raw := map[string]any{
		"update_every": 5,
		"extra":        "value",
	}

	mc := Materialize(raw, creator, base)

	jc := mc[confgroup.NoJobName]
	assert.Equal(t, 5, jc.UpdateEvery())
	assert.Equal(t, 90000, jc.Priority())
	assert.Equal(t, "value", jc["extra"])
}

func TestMaterialize_AttributePrecedence(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}
	creator := module.Creator{Attributes: map[string]any{"update_every": 3}}

	mc := Materialize(nil, creator, base)

	assert.Equal(t, 3, mc[confgroup.NoJobName].UpdateEvery())
}

func TestMaterialize_MultiJob(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}
	creator := module.Creator{}

	raw := map[string]any{
		"update_every": 2,
		"job1": map[string]any{
			"url": "http://localhost:1",
		},
		"job2": map[string]any{
			"url":          "http://localhost:2",
			"update_every": 10,
		},
	}

	mc := Materialize(raw, creator, base)

	assert.Len(t, mc, 2)
	assert.Equal(t, 2, mc["job1"].UpdateEvery())
	assert.Equal(t, "http://localhost:1", mc["job1"]["url"])
	assert.Equal(t, 10, mc["job2"].UpdateEvery())
}

func TestMaterialize_MalformedRequiredKeyFallsBackToDefault(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}
	creator := module.Creator{}

	raw := map[string]any{
		"update_every": "not-a-number",
	}

	mc := Materialize(raw, creator, base)
	assert.Equal(t, 1, mc[confgroup.NoJobName].UpdateEvery())
}

func TestMaterialize_NonPositiveUpdateEveryFallsBackToDefault(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 1, Priority: 90000, Retries: 10}
	creator := module.Creator{}

	raw := map[string]any{"update_every": 0}
	mc := Materialize(raw, creator, base)
	assert.Equal(t, 1, mc[confgroup.NoJobName].UpdateEvery())
}

func TestMaterialize_NonPositiveBaseUpdateEveryClampsToOne(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 0, Priority: 90000, Retries: 10}
	creator := module.Creator{}

	mc := Materialize(nil, creator, base)
	assert.Equal(t, 1, mc[confgroup.NoJobName].UpdateEvery())
}

func TestMaterialize_MultiJobNonPositivePerJobUpdateEveryFallsBackToDefault(t *testing.T) {
	base := env.BaseConfig{UpdateEvery: 2, Priority: 90000, Retries: 10}
	creator := module.Creator{}

	raw := map[string]any{
		"job1": map[string]any{
			"update_every": -5,
		},
	}

	mc := Materialize(raw, creator, base)
	assert.Equal(t, 2, mc["job1"].UpdateEvery())
}
