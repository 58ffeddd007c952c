// SPDX-License-Identifier: GPL-3.0-or-later

// Package confopt holds small coercion helpers shared by the config loader
// and the config materializer.
package confopt

import "strconv"

// ToInt coerces a YAML-decoded scalar into an int. YAML mappings decode
// integers as int, int64 or float64 depending on the literal's shape, and
// quoted numbers decode as string; ToInt accepts all of them. It reports
// false when v cannot be coerced, so callers can fall through to the next
// layer of a defaults precedence chain.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
