// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/netdataapi"
)

func newTestCreator() Creator {
	return Creator{
		Create: func(_ confgroup.JobConfig, _ string, _ *netdataapi.API) (Module, error) {
			return &fakeModule{}, nil
		},
		Attributes: map[string]any{"update_every": 5},
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := Registry{}
	reg.Register("example", newTestCreator())

	creator, ok := reg.Lookup("example")
	require.True(t, ok)

	v, ok := creator.Attribute("update_every")
	require.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterPanicsOnDuplicate(t *testing.T) {
	reg := Registry{}
	reg.Register("example", newTestCreator())

	assert.Panics(t, func() {
		reg.Register("example", newTestCreator())
	})
}

func TestRegistry_Names(t *testing.T) {
	reg := Registry{}
	reg.Register("a", newTestCreator())
	reg.Register("b", newTestCreator())

	assert.ElementsMatch(t, []string{"a", "b"}, reg.Names())
}
