// report.go: the crash report model and format dispatch
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import "time"

// CrashReport is the fully assembled, recovery-phase view of a crash: a
// timestamp, optional signal/reason, and the three context collectors'
// output.
type CrashReport struct {
	Timestamp  time.Time
	HasSignal  bool
	Signal     int32
	Reason     string
	StackTrace StackTrace
	ThreadInfo ThreadInfo
	SystemInfo SystemInfo
	AppInfo    ApplicationInfo
	Additional map[string]string
}

// Format renders r in the given encoding.
func (r CrashReport) Format(format ReportFormat) string {
	switch format {
	case JSON:
		return formatJSON(r)
	case XML:
		return formatXML(r)
	default:
		return formatPlainText(r)
	}
}

// collectContextForDetailLevel runs the thread/system collectors according
// to level. Minimal skips both (a recovered report carries only what the
// raw log already has plus symbol names); Standard and Extended both run
// them, differing only in whether the symbolicator is allowed to shell out
// to addr2line/atos.
func collectContextForDetailLevel(level DetailLevel) (ThreadInfo, SystemInfo) {
	if level == Minimal {
		return ThreadInfo{}, SystemInfo{}
	}
	return collectThreadInfo(), collectSystemInfo()
}

// signalDisplayName returns the human-readable name for the report's
// signal, or "" if the report has none.
func (r CrashReport) signalDisplayName() string {
	if !r.HasSignal {
		return ""
	}
	return signalName(int(r.Signal))
}
