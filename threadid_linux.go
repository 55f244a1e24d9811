//go:build linux

// threadid_linux.go: async-signal-safe current-thread-id acquisition (Linux)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import "syscall"

// currentThreadID returns the kernel thread id (gettid(2)) of the OS thread
// executing this call, reinterpreted as an opaque uint64 thread id.
// syscall.Gettid is a direct, allocation-free syscall wrapper.
func currentThreadID() uint64 {
	return uint64(syscall.Gettid())
}
