// SPDX-License-Identifier: GPL-3.0-or-later

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyArgs(t *testing.T) {
	tests := map[string]struct {
		args             []string
		known            []string
		expectedSelected []string
		expectedDebug    bool
		expectedOverride bool
		expectedUpdate   int
	}{
		"check is a no-op": {
			args: []string{"check"},
		},
		"debug enables debug mode": {
			args:          []string{"debug"},
			expectedDebug: true,
		},
		"all enables debug mode": {
			args:          []string{"all"},
			expectedDebug: true,
		},
		"known module selects and enables debug": {
			args:             []string{"example"},
			known:            []string{"example"},
			expectedSelected: []string{"example"},
			expectedDebug:    true,
		},
		"positive integer overrides update_every": {
			args:             []string{"5"},
			expectedOverride: true,
			expectedUpdate:   5,
		},
		"unrecognized token is ignored": {
			args: []string{"bogus"},
		},
		"duplicate module selection is not repeated": {
			args:             []string{"example", "example"},
			known:            []string{"example"},
			expectedSelected: []string{"example"},
			expectedDebug:    true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			s := &Settings{Base: BaseConfig{UpdateEvery: 1}}
			s.ApplyArgs(test.args, test.known)

			assert.Equal(t, test.expectedSelected, s.Selected)
			assert.Equal(t, test.expectedDebug, s.Debug)
			assert.Equal(t, test.expectedOverride, s.OverrideUpdateEvery)
			if test.expectedOverride {
				assert.Equal(t, test.expectedUpdate, s.Base.UpdateEvery)
			}
		})
	}
}
