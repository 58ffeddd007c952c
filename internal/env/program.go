// SPDX-License-Identifier: GPL-3.0-or-later

package env

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultProgram is used when the binary's own path can't be determined
// (os.Executable failing is rare — a deleted or unreadable /proc/self/exe on
// Linux) — it names this plugin, not any particular collector module.
const defaultProgram = "pythond"

// resolveProgram returns the PROGRAM log prefix (the binary's basename with
// any ".plugin" suffix stripped) and the directory the binary lives in,
// resolving through a symlink if the running binary was invoked via one.
func resolveProgram() (program, dir string) {
	path, err := os.Executable()
	if err != nil || path == "" {
		return defaultProgram, ""
	}

	_, program = filepath.Split(path)
	program = strings.TrimSuffix(program, ".plugin")

	if strings.HasSuffix(program, ".test") {
		program = "test"
	}

	fi, err := os.Lstat(path)
	if err != nil {
		return program, ""
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return program, ""
		}
		return program, filepath.Dir(realPath)
	}
	return program, filepath.Dir(path)
}
