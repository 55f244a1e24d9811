// diaglog.go: the library's own operational diagnostic log
//
// Distinct from the crash report content itself: this is crashguard telling
// a caller what it is doing ("recovered a pending crash report", "failed to
// install signal handlers"), gated by Config.Logger/Config.LogLevel. Silent
// (io.Discard) unless a caller opts in.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import "fmt"

// Priority is a log level, ordered from most to least verbose.
type Priority int

const (
	LogDebug Priority = iota
	LogInfo
	LogWarning
	LogErr
	LogCrit
	LogEmerg
)

var priorityName = map[Priority]string{
	LogDebug:   "DEBUG",
	LogInfo:    "INFO",
	LogWarning: "WARNING",
	LogErr:     "ERROR",
	LogCrit:    "CRITICAL",
	LogEmerg:   "EMERGENCY",
}

func (p Priority) String() string {
	if s, ok := priorityName[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// logf writes a single diagnostic line to cfg.Logger if prio meets or
// exceeds cfg.LogLevel. A nil or io.Discard Logger (the default) makes this
// a no-op beyond the level check.
func logf(cfg Config, prio Priority, format string, v ...interface{}) {
	if cfg.Logger == nil || prio < cfg.LogLevel {
		return
	}
	ts := now().UTC().Format("2006-01-02T15:04:05.000Z")
	fmt.Fprintf(cfg.Logger, "%s [%s] %s\n", ts, prio, fmt.Sprintf(format, v...))
}
