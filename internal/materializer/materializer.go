// SPDX-License-Identifier: GPL-3.0-or-later

// Package materializer implements the config materializer (§4.3): for each
// loaded module it computes a job-name -> JobConfig mapping by layering
// values from the module's config file, the module's own attributes, and
// the process-wide base configuration.
package materializer

import (
	"github.com/freejohn/pythond/internal/confgroup"
	"github.com/freejohn/pythond/internal/confopt"
	"github.com/freejohn/pythond/internal/env"
	"github.com/freejohn/pythond/internal/module"
)

const (
	keyUpdateEvery = "update_every"
	keyPriority    = "priority"
	keyRetries     = "retries"

	// defaultUpdateEvery is the last-resort floor for update_every: even a
	// misconfigured base configuration must not hand a job a scheduling
	// period of zero or less.
	defaultUpdateEvery = 1
)

var requiredKeys = [...]string{keyUpdateEvery, keyPriority, keyRetries}

// Materialize computes the ModuleConfig for one module from its decoded
// config file (raw may be nil when the file is absent or failed to parse)
// and the module's Creator (whose Attributes are the second precedence
// layer) and the process base configuration (the third and last layer).
func Materialize(raw map[string]any, creator module.Creator, base env.BaseConfig) confgroup.ModuleConfig {
	if raw == nil {
		raw = map[string]any{}
	}

	defaults := confgroup.JobConfig{
		keyUpdateEvery: resolveDefault(raw, keyUpdateEvery, creator, base.UpdateEvery),
		keyPriority:    resolveDefault(raw, keyPriority, creator, base.Priority),
		keyRetries:     resolveDefault(raw, keyRetries, creator, base.Retries),
	}

	if isMultiJob(raw) {
		return materializeMultiJob(raw, defaults)
	}
	return materializeSingleJob(raw, defaults)
}

// resolveDefault applies the §4.3 precedence for one required key, stopping
// at the first hit: the file's top-level value (consumed from raw whether
// or not it coerces), then the module's own attribute, then the base
// configuration. update_every additionally must be a positive number of
// seconds at every tier, since Timetable.AdvanceOnSuccess divides by it; a
// non-positive value is treated the same as a missing one and falls
// through to the next tier, with the base configuration itself clamped as
// the last resort.
func resolveDefault(raw map[string]any, key string, creator module.Creator, base int) int {
	valid := func(n int) bool { return key != keyUpdateEvery || n > 0 }

	if v, ok := raw[key]; ok {
		delete(raw, key)
		if n, ok := confopt.ToInt(v); ok && valid(n) {
			return n
		}
	}
	if v, ok := creator.Attribute(key); ok {
		if n, ok := confopt.ToInt(v); ok && valid(n) {
			return n
		}
	}
	if !valid(base) {
		return defaultUpdateEvery
	}
	return base
}

// isMultiJob reports whether any remaining top-level value (after the
// three required keys were consumed) is itself a mapping.
func isMultiJob(raw map[string]any) bool {
	for _, v := range raw {
		if _, ok := v.(map[string]any); ok {
			return true
		}
	}
	return false
}

func materializeMultiJob(raw map[string]any, defaults confgroup.JobConfig) confgroup.ModuleConfig {
	mc := confgroup.ModuleConfig{}
	for jobName, v := range raw {
		sub, ok := v.(map[string]any)
		if !ok {
			continue
		}
		jc := confgroup.JobConfig{}
		for k, vv := range sub {
			jc[k] = vv
		}
		fillRequired(jc, defaults)
		mc[jobName] = jc
	}
	return mc
}

func materializeSingleJob(raw map[string]any, defaults confgroup.JobConfig) confgroup.ModuleConfig {
	jc := confgroup.JobConfig{}
	for k, v := range raw {
		jc[k] = v
	}
	for _, key := range requiredKeys {
		jc[key] = defaults[key]
	}
	return confgroup.ModuleConfig{confgroup.NoJobName: jc}
}

// fillRequired inserts any required key missing from jc using defaults,
// stores a present value that coerces as its int form, and replaces a
// present-but-malformed value with the default. A
// non-positive per-job update_every is malformed for this purpose, same as
// one that fails to coerce at all.
func fillRequired(jc confgroup.JobConfig, defaults confgroup.JobConfig) {
	for _, key := range requiredKeys {
		v, ok := jc[key]
		if !ok {
			jc[key] = defaults[key]
			continue
		}
		n, ok := confopt.ToInt(v)
		if !ok || (key == keyUpdateEvery && n <= 0) {
			jc[key] = defaults[key]
			continue
		}
		jc[key] = n
	}
}
