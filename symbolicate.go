// symbolicate.go: the stack symbolicator
//
// Resolves raw return addresses into readable StackFrames. Best-effort only:
// the final report always contains at least the hex addresses, even if
// every other enrichment step fails.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"os"
	"runtime"
	"time"
)

// addrToLineTimeout bounds how long the opportunistic external symbol-
// enrichment helper (addr2line on Linux, atos on macOS) is allowed to run
// per frame; it is best-effort and must never stall recovery.
const addrToLineTimeout = 500 * time.Millisecond

// symbolicate converts raw addresses into a StackTrace. includeExternal
// gates the opportunistic addr2line/atos enrichment step.
func symbolicate(addrs []uintptr, includeExternal bool) StackTrace {
	modulePath := executableModulePath()

	frames := make([]StackFrame, 0, len(addrs))
	for _, addr := range addrs {
		frames = append(frames, symbolicateOne(addr, modulePath, includeExternal))
	}
	return StackTrace{Frames: frames}
}

func symbolicateOne(addr uintptr, modulePath string, includeExternal bool) StackFrame {
	if addr == 0 {
		return StackFrame{
			Address: "0x0 (nil address)",
			Symbol:  "<nil address pointer>",
		}
	}

	hex := hexAddr(addr)

	fn := runtime.FuncForPC(addr)
	if fn == nil {
		return StackFrame{
			Address: hex,
			Symbol:  "<dladdr failed>",
		}
	}

	entry := fn.Entry()
	frame := StackFrame{
		Address:  hex,
		Symbol:   demangle(fn.Name()),
		FileName: modulePath,
	}
	if addr >= entry {
		frame.Offset = uint64(addr - entry)
		frame.HasOffset = true
	}

	if file, line, ok := fn.FileLine(addr); ok && file != "" {
		frame.FileName = file
		frame.LineNumber = line
		return frame
	}

	if includeExternal && modulePath != "" {
		if file, line, ok := externalSymbolicate(modulePath, addr); ok {
			frame.FileName = file
			frame.LineNumber = line
		}
	}

	return frame
}

// demangle is a no-op stub: Go's compiled symbol names need no Swift-style
// demangling, but the hook is kept so the step is visible in the pipeline
// and so a future language-specific demangler has a place to plug in.
func demangle(name string) string {
	return name
}

// executableModulePath returns the path to the running binary, or "" if it
// cannot be determined.
func executableModulePath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return exe
}

func hexAddr(addr uintptr) string {
	var buf [2 + 16]byte
	const hexDigits = "0123456789abcdef"
	n := len(buf)
	v := uint64(addr)
	if v == 0 {
		n--
		buf[n] = '0'
	} else {
		for v > 0 {
			n--
			buf[n] = hexDigits[v&0xf]
			v >>= 4
		}
	}
	n--
	buf[n] = 'x'
	n--
	buf[n] = '0'
	return string(buf[n:])
}
