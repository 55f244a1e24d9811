// recovery.go: the recovery orchestrator
//
// Runs after a restart following a crash: finds the pending raw log left by
// the signal phase, parses it (accepting both the canonical and
// alternative dialects), symbolicates or falls back to a live backtrace,
// writes the final report, and always unlinks the raw log before
// returning.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// parsedRawLog holds the fields recovered from pending_crash.txt.
type parsedRawLog struct {
	hasSignal bool
	signal    int32
	timestamp int64
	threadID  uint64
	addrs     []uintptr
}

// processPendingRawCrashReport is the recovery orchestrator's public entry
// point. It returns the final report path and true on success, or "",
// false if there was nothing to recover or recovery failed.
func processPendingRawCrashReport(store *rawLogStore, cfg Config, appInfo ApplicationInfo, writer func(CrashReport, Config) (string, bool)) (string, bool) {
	if cfg.ReportDir == "" {
		return "", false
	}
	if store == nil || !store.exists() {
		logf(cfg, LogDebug, "no pending raw crash log found")
		return "", false
	}

	parsed, err := parseRawLogFile(store.path)
	if err != nil {
		handleError(wrapError(err, ErrCodeRawLogParseFailed, "failed to read pending raw log"))
		logf(cfg, LogWarning, "failed to read pending raw log: %v", err)
		_ = store.unlink()
		return "", false
	}

	if !parsed.hasSignal {
		handleError(newError(ErrCodeRawLogParseFailed, "pending raw log has no signal field; discarding"))
		logf(cfg, LogWarning, "pending raw log has no signal field; discarding")
		_ = store.unlink()
		return "", false
	}

	report := generateCrashReport(parsed, cfg, appInfo)

	path, ok := writer(report, cfg)
	if ok {
		logf(cfg, LogInfo, "recovered crash report written to %s", path)
	} else {
		logf(cfg, LogWarning, "recovery succeeded but final report write failed")
	}

	_ = store.unlink()

	return path, ok
}

// generateCrashReport assembles a CrashReport from a parsed raw log,
// using its timestamp/thread id when present and symbolicating its
// addresses, or falling back to a live backtrace when the raw log carried
// none.
func generateCrashReport(parsed parsedRawLog, cfg Config, appInfo ApplicationInfo) CrashReport {
	ts := now()
	if parsed.timestamp > 0 {
		ts = timeFromUnix(parsed.timestamp)
	}

	threadInfo, systemInfo := collectContextForDetailLevel(cfg.DetailLevel)
	if parsed.threadID != 0 {
		threadInfo.CurrentThreadID = parsed.threadID
	}

	addrs := parsed.addrs
	if len(addrs) == 0 {
		n := captureStack(1)
		addrs = append(addrs, capturedFrames[:n]...)
	}

	includeExternal := cfg.IncludeSymbolication && cfg.DetailLevel == Extended

	return CrashReport{
		Timestamp:  ts,
		HasSignal:  true,
		Signal:     parsed.signal,
		Reason:     "Crash (recovered from raw log)",
		StackTrace: symbolicate(addrs, includeExternal),
		ThreadInfo: threadInfo,
		SystemInfo: systemInfo,
		AppInfo:    appInfo,
	}
}

// parseRawLogFile reads and parses the raw log at path, accepting both the
// canonical ("Frames (raw addresses):" / "--- C Minimal Report End ---")
// and alternative ("Frames:" / "--- End of Raw Report ---") dialects.
func parseRawLogFile(path string) (parsedRawLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return parsedRawLog{}, err
	}
	defer f.Close()

	var out parsedRawLog
	inFrames := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "Signal:"):
			if v, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "Signal:")), 10, 32); err == nil {
				out.signal = int32(v)
				out.hasSignal = true
			}
			inFrames = false
		case strings.HasPrefix(line, "Timestamp:"):
			if v, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "Timestamp:")), 10, 64); err == nil {
				out.timestamp = v
			}
			inFrames = false
		case strings.HasPrefix(line, "ThreadID:"):
			if v, err := strconv.ParseUint(strings.TrimSpace(strings.TrimPrefix(line, "ThreadID:")), 10, 64); err == nil {
				out.threadID = v
			}
			inFrames = false
		case strings.HasPrefix(line, "Frames (raw addresses):"), strings.HasPrefix(line, "Frames:"):
			inFrames = true
		case strings.Contains(line, "--- End of Raw Report ---"), strings.Contains(line, "--- C Minimal Report End ---"):
			inFrames = false
		case inFrames:
			if addr, ok := parseFrameLine(line); ok {
				out.addrs = append(out.addrs, addr)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return parsedRawLog{}, err
	}

	return out, nil
}

// parseFrameLine parses a "  0x<hex>" or "  0x0 (nil)" frame line.
func parseFrameLine(line string) (uintptr, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "0x") {
		return 0, false
	}
	hexPart := trimmed[2:]
	if idx := strings.IndexByte(hexPart, ' '); idx >= 0 {
		hexPart = hexPart[:idx]
	}
	v, err := strconv.ParseUint(hexPart, 16, 64)
	if err != nil {
		return 0, false
	}
	return uintptr(v), true
}
