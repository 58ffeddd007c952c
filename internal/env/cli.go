// SPDX-License-Identifier: GPL-3.0-or-later

package env

import "strconv"

// ApplyArgs interprets command-line tokens (everything after the program
// name) per §4.1:
//   - "check" is a no-op flag
//   - "debug" or "all" enables debug logging
//   - a token matching a name in knownModules selects that module and
//     enables debug logging
//   - a token that parses as a positive integer overrides update_every
//   - unrecognized tokens are silently ignored
//
// Selected modules accumulate across tokens; duplicates are kept out.
func (s *Settings) ApplyArgs(args []string, knownModules []string) {
	known := make(map[string]bool, len(knownModules))
	for _, m := range knownModules {
		known[m] = true
	}

	selected := make(map[string]bool)
	for _, name := range s.Selected {
		selected[name] = true
	}

	for _, tok := range args {
		switch {
		case tok == "check":
			// no-op
		case tok == "debug" || tok == "all":
			s.Debug = true
		case known[tok]:
			if !selected[tok] {
				selected[tok] = true
				s.Selected = append(s.Selected, tok)
			}
			s.Debug = true
		default:
			if n, err := strconv.Atoi(tok); err == nil && n > 0 {
				s.Base.UpdateEvery = n
				s.OverrideUpdateEvery = true
			}
			// else: unrecognized, silently ignored
		}
	}
}
