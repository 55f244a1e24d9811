// Package crashguard is a crash-reporting library for long-running native
// processes on POSIX-like kernels (Linux and macOS).
//
// It installs handlers for fatal process signals (SIGSEGV, SIGABRT, SIGILL,
// SIGFPE, SIGBUS, SIGPIPE), captures a minimal snapshot of the crash from
// inside the signal path without allocating memory or taking locks, and
// upgrades that snapshot into a fully symbolicated, human-readable crash
// report on the next normal process start.
//
// # Lifecycle
//
// A process using crashguard follows a fixed sequence:
//
//	cg := crashguard.Default()
//	cg.Configure("myapp", "1.2.3", "", "/var/lib/myapp/crashes")
//
//	// Always drain a pending raw log from a previous crash before
//	// installing handlers again - this is the caller's responsibility.
//	cg.ProcessPendingRawCrashReport()
//
//	cg.InstallHandlers()
//	defer cg.UninstallHandlers()
//
// # Manual and simulated reports
//
//	path, ok := cg.WriteCrashReport("manual diagnostic dump")
//	path, ok := cg.SimulateSignal(11) // SIGSEGV, for testing
//
// # Report formats
//
// Reports are written as plain text (default), JSON, or XML, selected via
// Config.Format. All three are pure functions of a CrashReport value; see
// report.go and the format_*.go files.
package crashguard
