// main.go: crashtester, an integration-test harness that intentionally
// crashes the process in chosen ways
//
// Usage: crashtester <crash-type> <report-dir>
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/agilira/crashguard"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: crashtester <crash-type> <report-dir>")
		os.Exit(2)
	}

	crashType := os.Args[1]
	reportDir := os.Args[2]

	cg := crashguard.Default()
	if err := cg.Configure("crashtester", "1.0.0", "", reportDir); err != nil {
		fmt.Fprintf(os.Stderr, "configure failed: %v\n", err)
		os.Exit(2)
	}

	if _, ok := cg.ProcessPendingRawCrashReport(); ok {
		fmt.Println("recovered a pending crash report")
	}

	cg.InstallHandlers()
	defer cg.UninstallHandlers()

	switch crashType {
	case "segfault", "sigsegv":
		triggerSegfault()
	case "abort", "sigabrt":
		triggerAbort()
	case "floating-point-exception", "fpe", "sigfpe":
		triggerFPE()
	case "illegal-instruction", "sigill":
		triggerIllegalInstruction()
	case "bus-error", "sigbus":
		triggerBusError()
	case "manual":
		path, ok := cg.WriteCrashReport("manual report requested by crashtester")
		if !ok {
			fmt.Fprintln(os.Stderr, "manual report write failed")
			os.Exit(1)
		}
		fmt.Println(path)
		os.Exit(0)
	case "raw_report_segfault":
		path, ok := cg.SimulateSignal(11)
		if !ok {
			fmt.Fprintln(os.Stderr, "simulated report write failed")
			os.Exit(1)
		}
		fmt.Println(path)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown crash type: %s\n", crashType)
		os.Exit(2)
	}
}

// triggerSegfault dereferences a nil pointer.
func triggerSegfault() {
	var p *int
	*p = 1
}

// triggerAbort exits with the conventional 128+SIGABRT status. A true
// libc abort(3) raise is out of reach without cgo, so this is the closest
// reachable approximation: it will not be caught by an installed SIGABRT
// handler, since os.Exit bypasses signal delivery entirely.
func triggerAbort() {
	os.Exit(134)
}

// triggerFPE performs an integer division by zero. The Go runtime turns this
// into an "integer divide by zero" run-time panic; no SIGFPE reaches
// crashguard's installed handlers.
func triggerFPE() {
	a, b := 1, 0
	fmt.Println(a / b)
}

// triggerIllegalInstruction loads a function value from the unmapped
// address 0xdeadbeef and calls it. The load faults with SIGSEGV, which the
// Go runtime turns into a run-time panic; no illegal instruction is
// executed and no SIGILL is raised.
func triggerIllegalInstruction() {
	fn := unsafe.Pointer(uintptr(0xdeadbeef))
	(*(*func())(fn))()
}

// triggerBusError dereferences a nil pointer. A true bus error (misaligned
// or truncated mmap access) is not reachable from pure Go without cgo; a
// nil 64-bit write is the closest reachable approximation; it faults with
// SIGSEGV rather than SIGBUS, which the Go runtime turns into a run-time
// panic.
func triggerBusError() {
	var p *int64
	*p = 1
}
