// SPDX-License-Identifier: GPL-3.0-or-later

// Package yamlconfig reads a YAML document from a filesystem path into a
// generic tree of mappings, sequences and scalars. It is the supervisor's
// only contact point with the YAML parsing dependency. A missing file is
// reported as (nil, nil) since every caller treats "no file" as "use
// defaults"; a file that exists but fails to read or parse is reported via
// a non-nil error so the caller can log it before falling back to the same
// defaults.
package yamlconfig

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Node is a decoded YAML value: map[string]any, map[interface{}]interface{}
// (nested mappings decode this way under yaml.v2), []any, or a scalar
// (string, int, bool, float64).
type Node = any

// Load reads and parses the YAML document at path. A missing file is not
// an error: it returns (nil, nil), the "informational, not a stop" case.
// Any other failure (permission denied, malformed YAML) is reported via err
// so the caller can log it, but the caller should still proceed with
// defaults as if the file were absent.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalize(raw).(map[string]any), nil
}

// normalize walks the decoded tree converting yaml.v2's
// map[interface{}]interface{} nodes into map[string]any so the rest of the
// supervisor never has to special-case the decoder's own map type.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalize(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]any, len(x))
		for k, val := range x {
			if ks, ok := k.(string); ok {
				out[ks] = normalize(val)
			}
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalize(val)
		}
		return out
	default:
		return x
	}
}
