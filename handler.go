// handler.go: signal-handler installer
//
// Go's runtime is the only true signal handler in the process; user code
// registered via os/signal.Notify runs on a dedicated goroutine once the
// runtime has decided to forward the signal rather than act on it directly.
// Only asynchronously delivered signals reach that goroutine (for example
// one sent with kill(2), or SIGPIPE). A SIGSEGV, SIGBUS or SIGFPE caused by
// a fault in Go code is turned into a run-time panic, and a SIGILL raised
// by the hardware makes the runtime exit with a stack dump; in both cases
// onCrash is not called and no raw log is written - see
// https://pkg.go.dev/os/signal, "Synchronous signals". This
// is the idiomatic Go substitute for the documented "register a new sigaction,
// remember the old one, re-raise with the old disposition restored": we
// Notify, run the crash callback, then Reset the signal's disposition back
// to SIG_DFL and re-raise via syscall.Kill so the default action
// (terminate, and for core-dumping signals, dump core) takes over.
//
// True previous-sigaction save/restore (distinguishing "no prior handler"
// from "some other library's handler was already installed") needs cgo or
// per-arch raw sigaction syscalls; this implementation tracks only
// crashguard's own installed/uninstalled state, which is the documented
// Open Question in the design resolved the idiomatic-Go way (see DESIGN.md).
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// fatalSignals is the fixed set handled by crashguard.
var fatalSignals = []os.Signal{
	syscall.SIGABRT,
	syscall.SIGILL,
	syscall.SIGSEGV,
	syscall.SIGFPE,
	syscall.SIGBUS,
	syscall.SIGPIPE,
}

// signalName returns the table name for s, or "Signal <n>" otherwise.
func signalName(sig int) string {
	switch syscall.Signal(sig) {
	case syscall.SIGABRT:
		return "SIGABRT (Abort)"
	case syscall.SIGILL:
		return "SIGILL (Illegal Instruction)"
	case syscall.SIGSEGV:
		return "SIGSEGV (Segmentation Violation)"
	case syscall.SIGFPE:
		return "SIGFPE (Floating Point Exception)"
	case syscall.SIGBUS:
		return "SIGBUS (Bus Error)"
	case syscall.SIGPIPE:
		return "SIGPIPE (Broken Pipe)"
	default:
		return "Signal " + itoaSimple(sig)
	}
}

// itoaSimple avoids pulling in strconv for a tiny, rarely-hit formatting
// need shared between the handler and the report formatters.
func itoaSimple(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// signalInstaller installs/uninstalls handlers for the fatal signal set and
// re-raises a caught signal with its default disposition restored.
type signalInstaller struct {
	mu        sync.Mutex // serializes install/uninstall
	ch        chan os.Signal
	installed bool
	onCrash   func(sig int)
}

func newSignalInstaller(onCrash func(sig int)) *signalInstaller {
	return &signalInstaller{onCrash: onCrash}
}

// install registers handlers for every signal in fatalSignals with a single
// signal.Notify call. Notify reports no per-signal failure, so nothing is
// recorded here.
func (s *signalInstaller) install() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.installed {
		return
	}

	s.ch = make(chan os.Signal, len(fatalSignals))
	signal.Notify(s.ch, fatalSignals...)
	s.installed = true

	go s.loop(s.ch)
}

// uninstall restores the default disposition for every fatal signal and
// stops delivering them to crashguard.
func (s *signalInstaller) uninstall() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.installed {
		return
	}
	signal.Stop(s.ch)
	close(s.ch)
	s.installed = false
}

// loop dispatches each delivered signal to onCrash, then re-raises it with
// its default disposition restored.
func (s *signalInstaller) loop(ch chan os.Signal) {
	for sig := range ch {
		unixSig, ok := sig.(syscall.Signal)
		if !ok {
			continue
		}
		s.onCrash(int(unixSig))
		reraise(unixSig)
	}
}

// reraise restores the default disposition for sig and re-delivers it to
// the current process, so the OS default action (terminate, and for
// core-dumping signals, produce a core) takes over - the design
func reraise(sig syscall.Signal) {
	signal.Reset(sig)
	_ = syscall.Kill(os.Getpid(), sig)
}
