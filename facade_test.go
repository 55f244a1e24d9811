// facade_test.go: tests for the top-level public API
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"os"
	"strings"
	"testing"
)

func TestConfigureOpensStoreAndSetsAppInfo(t *testing.T) {
	cg := New()
	dir := t.TempDir()

	if err := cg.Configure("testapp", "2.0.0", "", dir); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if cg.appInfo.Name != "testapp" {
		t.Errorf("appInfo.Name = %q, want testapp", cg.appInfo.Name)
	}
	if cg.store == nil || !cg.store.exists() {
		t.Fatal("expected raw log store to be opened")
	}
	cg.store.close()
}

func TestWriteCrashReportProducesFile(t *testing.T) {
	cg := New()
	dir := t.TempDir()
	if err := cg.Configure("testapp", "2.0.0", "", dir); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	defer cg.store.close()

	path, ok := cg.WriteCrashReport("manual test report")
	if !ok {
		t.Fatal("expected WriteCrashReport to succeed")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected report at %s: %v", path, err)
	}
}

func TestSimulateSignalProducesReportWithSignal(t *testing.T) {
	cg := New()
	dir := t.TempDir()
	if err := cg.Configure("testapp", "2.0.0", "", dir); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	defer cg.store.close()

	var captured CrashReport
	cg.SetReportWriter(func(r CrashReport, cfg Config) (string, bool) {
		captured = r
		return "/dev/null", true
	})

	_, ok := cg.SimulateSignal(11)
	if !ok {
		t.Fatal("expected SimulateSignal to succeed")
	}
	if !captured.HasSignal || captured.Signal != 11 {
		t.Errorf("expected a report carrying signal 11, got %+v", captured)
	}
	if !strings.HasPrefix(captured.Reason, "Simulated signal") {
		t.Errorf("Reason = %q, want prefix %q", captured.Reason, "Simulated signal")
	}
}

func TestInstallUninstallHandlersRoundTrip(t *testing.T) {
	cg := New()
	dir := t.TempDir()
	if err := cg.Configure("testapp", "2.0.0", "", dir); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	defer cg.store.close()

	cg.InstallHandlers()
	cg.UninstallHandlers()
}

func TestDefaultReturnsSingleton(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("Default() should return the same instance on repeated calls")
	}
}

func TestSetConfigurationRejectsInvalidConfig(t *testing.T) {
	cg := New()
	bad := Config{MaxReports: -5}
	if err := cg.SetConfiguration(bad); err == nil {
		t.Fatal("expected SetConfiguration to reject a negative MaxReports")
	}
}
