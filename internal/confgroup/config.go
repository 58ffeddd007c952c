// SPDX-License-Identifier: GPL-3.0-or-later

// Package confgroup holds the generic configuration value the rest of the
// supervisor passes around: a job's materialized settings plus the job-name
// key that distinguishes jobs within a module.
package confgroup

import "strconv"

// NoJobName is the sentinel job-name a single-job module's configuration is
// keyed under.
const NoJobName = ""

const (
	keyUpdateEvery = "update_every"
	keyPriority    = "priority"
	keyRetries     = "retries"
)

// JobConfig is a job's materialized configuration: a mapping from string key
// to scalar value guaranteed, after materialization, to hold at least
// update_every, priority and retries. Additional keys are opaque to the
// supervisor and passed through to the module's Job constructor.
type JobConfig map[string]any

func (c JobConfig) getInt(key string) int {
	v, ok := c[key].(int)
	if !ok {
		return 0
	}
	return v
}

// UpdateEvery returns the job's configured period in seconds.
func (c JobConfig) UpdateEvery() int { return c.getInt(keyUpdateEvery) }

// Priority returns the job's configured chart priority.
func (c JobConfig) Priority() int { return c.getInt(keyPriority) }

// Retries returns the job's configured retry budget.
func (c JobConfig) Retries() int { return c.getInt(keyRetries) }

// SetUpdateEvery overrides the update_every key.
func (c JobConfig) SetUpdateEvery(v int) { c[keyUpdateEvery] = v }

// Clone returns a shallow copy, so callers can mutate it without affecting
// the map another job config might share.
func (c JobConfig) Clone() JobConfig {
	out := make(JobConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ModuleConfig maps job-name to JobConfig. A single-job module uses NoJobName.
type ModuleConfig map[string]JobConfig

// String renders a value the way it would appear in a log line.
func String(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	default:
		return ""
	}
}
