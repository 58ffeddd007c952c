// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import "log/slog"

const levelFatal = slog.Level(12)

var customLevels = map[slog.Leveler]string{
	levelFatal: "FATAL",
}

// Level is the process-wide minimum severity. DEBUG lines are suppressed
// unless it has been lowered to slog.LevelDebug.
var Level = &level{lvl: &slog.LevelVar{}}

type level struct {
	lvl *slog.LevelVar
}

func (l *level) Enabled(lvl slog.Level) bool {
	return lvl >= l.lvl.Level()
}

func (l *level) Set(lvl slog.Level) {
	l.lvl.Set(lvl)
}

// SetDebug toggles DEBUG-level logging on or off.
func (l *level) SetDebug(on bool) {
	if on {
		l.lvl.Set(slog.LevelDebug)
	} else {
		l.lvl.Set(slog.LevelInfo)
	}
}
