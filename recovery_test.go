// recovery_test.go: tests for the recovery orchestrator
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRawLog(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, rawLogFileName), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestParseRawLogCanonicalDialect(t *testing.T) {
	dir := t.TempDir()
	writeRawLog(t, dir, "Signal: 11\nTimestamp: 1700000000\nThreadID: 42\nFrames_count: 2\n"+
		"Frames (raw addresses):\n  0x1000\n  0x0 (nil)\n--- C Minimal Report End ---\n")

	parsed, err := parseRawLogFile(filepath.Join(dir, rawLogFileName))
	if err != nil {
		t.Fatalf("parseRawLogFile: %v", err)
	}
	if !parsed.hasSignal || parsed.signal != 11 {
		t.Fatalf("expected signal 11, got hasSignal=%v signal=%d", parsed.hasSignal, parsed.signal)
	}
	if parsed.timestamp != 1700000000 {
		t.Errorf("timestamp = %d", parsed.timestamp)
	}
	if parsed.threadID != 42 {
		t.Errorf("threadID = %d", parsed.threadID)
	}
	if len(parsed.addrs) != 2 || parsed.addrs[0] != 0x1000 || parsed.addrs[1] != 0 {
		t.Errorf("addrs = %v", parsed.addrs)
	}
}

func TestParseRawLogAlternativeDialect(t *testing.T) {
	dir := t.TempDir()
	writeRawLog(t, dir, "Signal: 6\nFrames:\n  0x2000\n--- End of Raw Report ---\n")

	parsed, err := parseRawLogFile(filepath.Join(dir, rawLogFileName))
	if err != nil {
		t.Fatalf("parseRawLogFile: %v", err)
	}
	if !parsed.hasSignal || parsed.signal != 6 {
		t.Fatalf("expected signal 6, got %+v", parsed)
	}
	if len(parsed.addrs) != 1 || parsed.addrs[0] != 0x2000 {
		t.Errorf("addrs = %v", parsed.addrs)
	}
}

func TestParseRawLogIgnoresUnknownLines(t *testing.T) {
	dir := t.TempDir()
	writeRawLog(t, dir, "Signal: 11\nSomeFutureField: whatever\nFrames:\n  0x3000\n--- End of Raw Report ---\n")

	parsed, err := parseRawLogFile(filepath.Join(dir, rawLogFileName))
	if err != nil {
		t.Fatalf("parseRawLogFile: %v", err)
	}
	if !parsed.hasSignal {
		t.Fatal("expected signal to be parsed despite an unknown intervening line")
	}
}

func TestProcessPendingRawCrashReportNoReportDir(t *testing.T) {
	path, ok := processPendingRawCrashReport(nil, Config{}, ApplicationInfo{}, writeReportAtomically)
	if ok || path != "" {
		t.Fatal("expected no-op when ReportDir is unset")
	}
}

func TestProcessPendingRawCrashReportNoStore(t *testing.T) {
	cfg := NewConfig()
	cfg.ReportDir = t.TempDir()
	path, ok := processPendingRawCrashReport(nil, cfg, ApplicationInfo{}, writeReportAtomically)
	if ok || path != "" {
		t.Fatal("expected no-op when store is nil")
	}
}

func TestProcessPendingRawCrashReportMalformedSignalUnlinks(t *testing.T) {
	dir := t.TempDir()
	store := newRawLogStore(dir)
	defer store.close()

	writeRawLog(t, dir, "Timestamp: 1700000000\nFrames:\n  0x1000\n--- End of Raw Report ---\n")

	cfg := NewConfig()
	cfg.ReportDir = dir

	path, ok := processPendingRawCrashReport(store, cfg, ApplicationInfo{Name: "demo"}, writeReportAtomically)
	if ok || path != "" {
		t.Fatal("expected recovery to fail when Signal is absent")
	}
	if store.exists() {
		t.Error("expected raw log to be unlinked even on a malformed record")
	}
}

func TestProcessPendingRawCrashReportSuccessWritesAndUnlinks(t *testing.T) {
	dir := t.TempDir()
	store := newRawLogStore(dir)
	defer store.close()

	writeRawLog(t, dir, "Signal: 11\nTimestamp: 1700000000\nThreadID: 7\nFrames:\n  0x1000\n--- End of Raw Report ---\n")

	cfg := NewConfig()
	cfg.ReportDir = dir

	path, ok := processPendingRawCrashReport(store, cfg, ApplicationInfo{Name: "demo"}, writeReportAtomically)
	if !ok || path == "" {
		t.Fatal("expected successful recovery")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected final report at %s: %v", path, err)
	}
	if store.exists() {
		t.Error("expected raw log to be unlinked after successful recovery")
	}
}
