//go:build darwin

// threadinfo_darwin.go: macOS per-thread diagnostics (best-effort stub)
//
// The kernel task-ports API (task_threads, thread_info) that would give a
// true per-thread state/CPU-usage dump needs cgo; without it, this reports
// only what runtime.NumGoroutine can stand in for, documented here as an
// approximation rather than a real per-OS-thread enumeration.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"fmt"
	"runtime"
)

func populatePlatformThreadInfo(info *ThreadInfo) {
	info.ThreadCount = 1
	info.Diagnostics = fmt.Sprintf(
		"<per-OS-thread enumeration unavailable without cgo; goroutine count=%d>",
		runtime.NumGoroutine(),
	)
}
