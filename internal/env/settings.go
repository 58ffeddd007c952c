// SPDX-License-Identifier: GPL-3.0-or-later

// Package env resolves the supervisor's startup configuration from the
// environment, the command line and the plugin config file, and owns the
// process-wide base configuration (update_every, priority, retries) that is
// frozen before the first job runs.
package env

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	envUpdateEvery = "NETDATA_UPDATE_EVERY"
	envPluginsDir  = "NETDATA_PLUGINS_DIR"
	envConfigDir   = "NETDATA_CONFIG_DIR"

	defaultConfigDir      = "/etc/netdata/"
	collectorRelativePath = "python.d" // joined onto NETDATA_PLUGINS_DIR, or onto the executable's directory when that is unset

	// DefaultPriority and DefaultRetries seed the base configuration when
	// neither the environment nor python.d.conf override them.
	DefaultPriority = 90000
	DefaultRetries  = 10
)

// BaseConfig is the process-wide default for the three required job keys.
// It is initialized once during startup and never mutated after the first
// job is constructed (§5: "initialized before jobs are constructed and not
// mutated thereafter; no locking is needed").
type BaseConfig struct {
	UpdateEvery int
	Priority    int
	Retries     int
}

// Settings is the fully resolved startup configuration.
type Settings struct {
	ModulesDir string
	ConfigDir  string
	Program    string
	Base       BaseConfig
	Debug      bool

	// Selected holds explicitly named modules from the command line; an
	// empty slice means "load all discovered modules."
	Selected []string

	// OverrideUpdateEvery is set when a positive-integer CLI token
	// overrode the update_every default; it only takes effect once Debug
	// is also true (§8 boundary behavior).
	OverrideUpdateEvery bool
}

// withTrailingSep normalizes a directory path to always end in a
// separator, matching the source's path-join convention.
func withTrailingSep(p string) string {
	if p == "" {
		return p
	}
	if !strings.HasSuffix(p, string(os.PathSeparator)) {
		p += string(os.PathSeparator)
	}
	return p
}

// Resolve computes Settings from the environment and executable location.
// It does not yet know about CLI tokens or python.d.conf; callers apply
// those on top via ApplyArgs and ApplyPluginConfig.
func Resolve() *Settings {
	program, execDir := resolveProgram()
	s := &Settings{
		Program: program,
	}

	s.ModulesDir = withTrailingSep(resolveModulesDir(execDir))
	s.ConfigDir = withTrailingSep(resolveConfigDir())

	s.Base = BaseConfig{
		UpdateEvery: resolveUpdateEveryDefault(),
		Priority:    DefaultPriority,
		Retries:     DefaultRetries,
	}

	return s
}

func resolveModulesDir(execDir string) string {
	if v := os.Getenv(envPluginsDir); v != "" {
		return filepath.Join(v, collectorRelativePath)
	}
	dir := execDir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return filepath.Join(dir, collectorRelativePath)
}

func resolveConfigDir() string {
	if v := os.Getenv(envConfigDir); v != "" {
		return v
	}
	return defaultConfigDir
}

func resolveUpdateEveryDefault() int {
	v := os.Getenv(envUpdateEvery)
	if v == "" {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// PythonDConfPath is the plugin-wide YAML config file path.
func (s *Settings) PythonDConfPath() string {
	return s.ConfigDir + "python.d.conf"
}

// ModuleConfPath is a single module's YAML config file path.
func (s *Settings) ModuleConfPath(moduleName string) string {
	return s.ConfigDir + "python.d" + string(os.PathSeparator) + moduleName + ".conf"
}
