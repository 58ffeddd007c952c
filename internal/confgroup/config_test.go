// SPDX-License-Identifier: GPL-3.0-or-later

package confgroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobConfig_UpdateEvery(t *testing.T) {
	tests := map[string]struct {
		cfg      JobConfig
		expected int
	}{
		"set":     {cfg: JobConfig{keyUpdateEvery: 5}, expected: 5},
		"not set": {cfg: JobConfig{}, expected: 0},
		"wrong type": {cfg: JobConfig{keyUpdateEvery: "5"}, expected: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.cfg.UpdateEvery())
		})
	}
}

func TestJobConfig_SetUpdateEvery(t *testing.T) {
	cfg := JobConfig{}
	cfg.SetUpdateEvery(7)
	assert.Equal(t, 7, cfg.UpdateEvery())
}

func TestJobConfig_Clone(t *testing.T) {
	cfg := JobConfig{keyUpdateEvery: 1, "name": "foo"}
	clone := cfg.Clone()

	assert.Equal(t, cfg, clone)

	clone["name"] = "bar"
	assert.Equal(t, "foo", cfg["name"])
}

func TestString(t *testing.T) {
	tests := map[string]struct {
		v        any
		expected string
	}{
		"string": {v: "foo", expected: "foo"},
		"int":    {v: 42, expected: "42"},
		"bool":   {v: true, expected: ""},
		"nil":    {v: nil, expected: ""},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, String(test.v))
		})
	}
}
