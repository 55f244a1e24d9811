// atomicwriter_test.go: tests for the atomic report writer
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteReportAtomicallyCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.ReportDir = dir

	r := CrashReport{
		Timestamp: time.Now(),
		AppInfo:   ApplicationInfo{Name: "demo"},
	}

	path, ok := writeReportAtomically(r, cfg)
	if !ok {
		t.Fatal("expected write to succeed")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected report file at %s: %v", path, err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("report written outside ReportDir: %s", path)
	}

	// No leftover temp file.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".crash" {
			t.Errorf("unexpected leftover file: %s", e.Name())
		}
	}
}

func TestReportFileNameReplacesSpacesWithUnderscores(t *testing.T) {
	r := CrashReport{Timestamp: time.Now()}
	name := reportFileName(r, "My Cool App")
	if strings.Contains(name, " ") {
		t.Errorf("reportFileName(%q) = %q, want no spaces", "My Cool App", name)
	}
	if !strings.HasPrefix(name, "My_Cool_App_") {
		t.Errorf("reportFileName(%q) = %q, want prefix %q", "My Cool App", name, "My_Cool_App_")
	}
}

func TestPruneOldReportsKeepsNewest(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, time.Now().Format("20060102_150405")+"_"+string(rune('a'+i))+".crash")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		// Ensure distinct mod times for deterministic ordering.
		modTime := time.Now().Add(time.Duration(i) * time.Second)
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("Chtimes: %v", err)
		}
	}

	pruneOldReports(dir, 2)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 files remaining, got %d", len(entries))
	}
}

func TestPruneOldReportsUnlimitedWhenZero(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, string(rune('a'+i))+".crash")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	pruneOldReports(dir, 0)

	entries, _ := os.ReadDir(dir)
	if len(entries) != 3 {
		t.Fatalf("expected no pruning with maxReports=0, got %d files", len(entries))
	}
}
