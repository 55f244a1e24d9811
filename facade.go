// facade.go: the top-level public API
//
// Process-wide state with a fixed lifecycle: Configure -> InstallHandlers ->
// either a crash, or UninstallHandlers at normal shutdown. Callers MUST
// call ProcessPendingRawCrashReport before InstallHandlers on startup, so
// recovery completes (and unlinks the raw log) before a fresh install
// re-truncates it.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"fmt"
	"path/filepath"
	"sync"
)

// CrashGuard is a configured instance of the crash-reporting facade. The
// zero value is not usable; construct one with Default() or New().
type CrashGuard struct {
	mu      sync.Mutex
	cfg     Config
	appInfo ApplicationInfo
	store   *rawLogStore
	handler *signalInstaller
	writer  func(CrashReport, Config) (string, bool)
}

var (
	defaultOnce     sync.Once
	defaultInstance *CrashGuard
)

// Default returns the process-wide singleton instance.
func Default() *CrashGuard {
	defaultOnce.Do(func() {
		defaultInstance = New()
	})
	return defaultInstance
}

// New constructs a standalone CrashGuard instance with default
// configuration. Most callers should use Default(); New() exists for
// tests and for processes that genuinely need isolated instances.
func New() *CrashGuard {
	cg := &CrashGuard{
		cfg:    NewConfig(),
		writer: writeReportAtomically,
	}
	cg.handler = newSignalInstaller(cg.onCrash)
	return cg
}

// Configure sets the application identity and report directory, and opens
// the raw-log store (truncating any stale content). dir defaults to the
// current working directory if empty.
func (cg *CrashGuard) Configure(name, version, path string, dir string) error {
	cg.mu.Lock()
	defer cg.mu.Unlock()

	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return newError(ErrCodeInvalidConfig, fmt.Sprintf("invalid report directory: %v", err))
	}

	cg.appInfo = defaultApplicationInfo(name, version, path)
	cg.cfg.ReportDir = dir

	if cg.store != nil {
		cg.store.close()
	}
	cg.store = newRawLogStore(dir)

	logf(cg.cfg, LogInfo, "configured app %q v%s, report dir %s", name, version, dir)

	return nil
}

// SetConfiguration replaces the active configuration. ReportDir is
// preserved from the prior Configure call unless explicitly set.
func (cg *CrashGuard) SetConfiguration(cfg Config) error {
	cg.mu.Lock()
	defer cg.mu.Unlock()
	if cfg.ReportDir == "" {
		cfg.ReportDir = cg.cfg.ReportDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cg.cfg = cfg.withDefaults()
	return nil
}

// SetReportWriter overrides how final reports get persisted. Primarily
// useful for tests; passing nil restores the atomic file writer.
func (cg *CrashGuard) SetReportWriter(w func(CrashReport, Config) (string, bool)) {
	cg.mu.Lock()
	defer cg.mu.Unlock()
	if w == nil {
		w = writeReportAtomically
	}
	cg.writer = w
}

// InstallHandlers registers the fatal-signal handlers. Safe to call more
// than once; subsequent calls are no-ops while already installed.
func (cg *CrashGuard) InstallHandlers() {
	cg.handler.install()
	cg.mu.Lock()
	cfg := cg.cfg
	cg.mu.Unlock()
	logf(cfg, LogDebug, "fatal signal handlers installed")
}

// UninstallHandlers restores default signal dispositions. Call at normal
// shutdown to stop intercepting the fatal signal set.
func (cg *CrashGuard) UninstallHandlers() {
	cg.handler.uninstall()
	cg.mu.Lock()
	cfg := cg.cfg
	cg.mu.Unlock()
	logf(cfg, LogDebug, "fatal signal handlers uninstalled")
}

// ProcessPendingRawCrashReport looks for a raw log left by a previous
// process instance, and if found, recovers it into a final report. It
// returns the final report path and true on success.
func (cg *CrashGuard) ProcessPendingRawCrashReport() (string, bool) {
	cg.mu.Lock()
	store := cg.store
	cfg := cg.cfg
	appInfo := cg.appInfo
	writer := cg.writer
	cg.mu.Unlock()

	return processPendingRawCrashReport(store, cfg, appInfo, writer)
}

// WriteCrashReport writes a manual crash report capturing a live
// backtrace from the calling goroutine, with no associated signal.
func (cg *CrashGuard) WriteCrashReport(reason string) (string, bool) {
	cg.mu.Lock()
	cfg := cg.cfg
	appInfo := cg.appInfo
	writer := cg.writer
	cg.mu.Unlock()

	n := captureStack(2)
	addrs := append([]uintptr(nil), capturedFrames[:n]...)

	threadInfo, systemInfo := collectContextForDetailLevel(cfg.DetailLevel)

	report := CrashReport{
		Timestamp:  now(),
		Reason:     reason,
		StackTrace: symbolicate(addrs, cfg.IncludeSymbolication && cfg.DetailLevel == Extended),
		ThreadInfo: threadInfo,
		SystemInfo: systemInfo,
		AppInfo:    appInfo,
	}

	path, ok := writer(report, cfg)
	if ok {
		logf(cfg, LogInfo, "manual crash report written to %s", path)
	} else {
		logf(cfg, LogWarning, "manual crash report write failed")
	}
	return path, ok
}

// SimulateSignal synthesizes a report as if sig had been caught, without
// actually raising it. Intended for integration testing.
func (cg *CrashGuard) SimulateSignal(sig int) (string, bool) {
	cg.mu.Lock()
	cfg := cg.cfg
	appInfo := cg.appInfo
	writer := cg.writer
	cg.mu.Unlock()

	n := captureStack(2)
	addrs := append([]uintptr(nil), capturedFrames[:n]...)

	threadInfo, systemInfo := collectContextForDetailLevel(cfg.DetailLevel)

	report := CrashReport{
		Timestamp:  now(),
		HasSignal:  true,
		Signal:     int32(sig),
		Reason:     fmt.Sprintf("Simulated signal %s", signalName(sig)),
		StackTrace: symbolicate(addrs, cfg.IncludeSymbolication && cfg.DetailLevel == Extended),
		ThreadInfo: threadInfo,
		SystemInfo: systemInfo,
		AppInfo:    appInfo,
	}

	path, ok := writer(report, cfg)
	if ok {
		logf(cfg, LogInfo, "simulated-signal crash report written to %s", path)
	} else {
		logf(cfg, LogWarning, "simulated-signal crash report write failed")
	}
	return path, ok
}

// onCrash is the signal-phase callback: it writes one raw-log record using
// only async-signal-safe primitives, then returns so the installer can
// re-raise the signal.
func (cg *CrashGuard) onCrash(sig int) {
	store := cg.store
	if store == nil {
		return
	}
	n := captureStack(3)
	store.writeRecord(int32(sig), rawNowUnix(), currentThreadID(), capturedFrames[:n])
}
