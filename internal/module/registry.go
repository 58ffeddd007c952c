// SPDX-License-Identifier: GPL-3.0-or-later

package module

import "fmt"

// Registry is the set of collector Creators discoverable by filename-stem
// name. Modules are statically linked into the binary and self-register
// through an init() call to Register; the module loader treats the
// registry as the "modules directory" listing (see design note on static
// linking as a Collector variant).
type Registry map[string]Creator

// DefaultRegistry is the registry every statically linked collector
// registers itself into.
var DefaultRegistry = Registry{}

// Register adds creator under name to the DefaultRegistry. Panics on a
// duplicate name: that is a build-time programming error, not a runtime
// condition the supervisor needs to recover from.
func Register(name string, creator Creator) {
	DefaultRegistry.Register(name, creator)
}

func (r Registry) Register(name string, creator Creator) {
	if _, ok := r[name]; ok {
		panic(fmt.Sprintf("module %q is already registered", name))
	}
	r[name] = creator
}

// Lookup returns the Creator registered under name.
func (r Registry) Lookup(name string) (Creator, bool) {
	v, ok := r[name]
	return v, ok
}

// Names returns every registered module name, for discovery-mode loading.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}
