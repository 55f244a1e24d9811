// rawlog.go: the raw-log store
//
// Owns the fixed-name raw-log file and its pre-opened fd across the entire
// process lifetime. The fd is opened once, at Configure time, and cached;
// it must survive until the signal handler needs it, which can be at any
// point up to process exit. Grounded on the writesyncers.go
// FileWriteSyncer (open-once, cache the fd, explicit Close), simplified
// here to a bare int fd because the signal phase cannot take the mutex
// a WriteSyncer would normally use.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"path/filepath"
	"syscall"
)

// rawLogFileName is the fixed name of the pending raw-log file.
const rawLogFileName = "pending_crash.txt"

// maxFrames bounds the pre-allocated backtrace buffer.
const maxFrames = 128

// rawLogStore owns the raw-log fd for the process lifetime. Its fields are
// set by newRawLogStore; afterwards only close() changes fd (to -1), and
// the signal-phase path reads fd without synchronization.
type rawLogStore struct {
	fd   int // cached fd, or -1 if opening failed (signal phase becomes a no-op)
	path string
}

// newRawLogStore opens <dir>/pending_crash.txt with create+read-write+
// truncate, mode 0700. If opening fails, fd is left at -1: signal-phase
// writes then become silent no-ops, which is acceptable here since the
// alternative is unsafe recovery.
func newRawLogStore(dir string) *rawLogStore {
	path := filepath.Join(dir, rawLogFileName)
	fd, err := syscall.Open(path, syscall.O_CREAT|syscall.O_RDWR|syscall.O_TRUNC, 0700)
	if err != nil {
		handleError(wrapError(err, ErrCodeRawLogOpenFailed, "failed to open raw log file"))
		return &rawLogStore{fd: -1, path: path}
	}
	return &rawLogStore{fd: fd, path: path}
}

// close releases the cached fd. Only called during reconfiguration or
// explicit teardown, never from the signal path.
func (s *rawLogStore) close() {
	if s.fd >= 0 {
		_ = syscall.Close(s.fd)
		s.fd = -1
	}
}

// exists reports whether the raw-log file is currently present on disk.
func (s *rawLogStore) exists() bool {
	var st syscall.Stat_t
	return syscall.Stat(s.path, &st) == nil
}

// unlink removes the raw-log file. Used by the recovery orchestrator after
// a successful or failed recovery attempt.
func (s *rawLogStore) unlink() error {
	err := syscall.Unlink(s.path)
	if err != nil && err != syscall.ENOENT {
		return err
	}
	return nil
}

// writeRecord emits one complete RawLogRecord to the cached fd using only
// the minimal-writer primitive, then fsyncs it. This is the entire
// signal-phase write path - it must not allocate, lock, or call anything
// beyond write(2)/fsync(2).
func (s *rawLogStore) writeRecord(signal int32, timestamp int64, threadID uint64, addrs []uintptr) {
	fd := s.fd
	if fd < 0 {
		return
	}

	writeLiteral(fd, []byte("Signal: "))
	writeI32(fd, signal)
	writeNewline(fd)

	writeLiteral(fd, []byte("Timestamp: "))
	// timestamp is i64; reuse the u64 writer since crash timestamps (seconds
	// since epoch, in scope) never go negative.
	writeU64(fd, uint64(timestamp))
	writeNewline(fd)

	writeLiteral(fd, []byte("ThreadID: "))
	writeU64(fd, threadID)
	writeNewline(fd)

	n := len(addrs)
	if n > maxFrames {
		n = maxFrames
	}

	writeLiteral(fd, []byte("Frames_count: "))
	writeI32(fd, int32(n))
	writeNewline(fd)

	writeLiteral(fd, []byte("Frames (raw addresses):"))
	writeNewline(fd)
	for i := 0; i < n; i++ {
		writeLiteral(fd, []byte("  "))
		if addrs[i] == 0 {
			writeLiteral(fd, []byte("0x0 (nil)"))
		} else {
			writePtr(fd, addrs[i])
		}
		writeNewline(fd)
	}

	writeLiteral(fd, []byte("--- C Minimal Report End ---"))
	writeNewline(fd)

	fsyncFd(fd)
}
