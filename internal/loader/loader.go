// SPDX-License-Identifier: GPL-3.0-or-later

// Package loader discovers and loads collector modules.
//
// The source this supervisor's contract is modeled on loads collectors by
// filename convention (<name>.chart.py) through a dynamic import facility.
// This rewrite links collectors into the binary at build time instead
// (design note, Collector variant (a): statically linked collectors
// registered at build time) — every collector's init() calls
// module.Register, and "discovering" a module means finding its name in
// the registry. The modules directory is still resolved and its presence
// still checked: a missing directory is a fatal environment condition, even
// though nothing is read from it.
package loader

import (
	"fmt"
	"os"

	"github.com/freejohn/pythond/internal/module"
)

// ErrModulesDirMissing is returned when the resolved modules directory does
// not exist on disk — a fatal environment condition (§7).
type ErrModulesDirMissing struct{ Dir string }

func (e *ErrModulesDirMissing) Error() string {
	return fmt.Sprintf("modules directory %q does not exist", e.Dir)
}

// ErrSelectionFailed is returned when an explicitly selected module could
// not be loaded; explicit selection demands success (§4.2).
type ErrSelectionFailed struct{ Module string }

func (e *ErrSelectionFailed) Error() string {
	return fmt.Sprintf("module %q was explicitly selected but failed to load", e.Module)
}

// LoadedModule is a handle on a loaded collector: its name, its Creator,
// and the attribute bag §4.3 reads defaults from.
type LoadedModule struct {
	Name    string
	Creator module.Creator
}

// Result is the module loader's report for one loading pass.
type Result struct {
	Loaded  []LoadedModule
	Skipped []string // discovery-mode load failures
}

// Load resolves modulesDir and then loads modules per §4.2:
//   - a non-empty selection loads exactly those names (after removing any
//     in disabled) and fails fatally if one cannot be found;
//   - an empty selection loads every registered name not in disabled,
//     skipping (not failing on) individual load failures.
func Load(modulesDir string, reg module.Registry, selected, disabled []string) (*Result, error) {
	if _, err := os.Stat(modulesDir); err != nil {
		return nil, &ErrModulesDirMissing{Dir: modulesDir}
	}

	disabledSet := make(map[string]bool, len(disabled))
	for _, d := range disabled {
		disabledSet[d] = true
	}

	res := &Result{}

	if len(selected) > 0 {
		for _, name := range selected {
			if disabledSet[name] {
				continue
			}
			creator, ok := reg.Lookup(name)
			if !ok {
				return nil, &ErrSelectionFailed{Module: name}
			}
			res.Loaded = append(res.Loaded, LoadedModule{Name: name, Creator: creator})
		}
		return res, nil
	}

	for _, name := range reg.Names() {
		if disabledSet[name] {
			continue
		}
		creator, ok := reg.Lookup(name)
		if !ok {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		res.Loaded = append(res.Loaded, LoadedModule{Name: name, Creator: creator})
	}

	return res, nil
}
