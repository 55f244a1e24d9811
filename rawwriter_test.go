// rawwriter_test.go: tests for the minimal-writer primitive
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"os"
	"testing"
)

func openTempFD(t *testing.T) (int, string) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "rawwriter_test_*")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	path := f.Name()
	fd := int(f.Fd())
	t.Cleanup(func() { f.Close() })
	return fd, path
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(b)
}

func TestWriteI32Positive(t *testing.T) {
	fd, path := openTempFD(t)
	writeI32(fd, 11)
	if got := readAll(t, path); got != "11" {
		t.Errorf("writeI32(11) = %q, want %q", got, "11")
	}
}

func TestWriteI32Negative(t *testing.T) {
	fd, path := openTempFD(t)
	writeI32(fd, -42)
	if got := readAll(t, path); got != "-42" {
		t.Errorf("writeI32(-42) = %q, want %q", got, "-42")
	}
}

func TestWriteI32Zero(t *testing.T) {
	fd, path := openTempFD(t)
	writeI32(fd, 0)
	if got := readAll(t, path); got != "0" {
		t.Errorf("writeI32(0) = %q, want %q", got, "0")
	}
}

func TestWriteI32IntMinClamped(t *testing.T) {
	fd, path := openTempFD(t)
	writeI32(fd, -2147483648)
	if got := readAll(t, path); got != "-2147483647" {
		t.Errorf("writeI32(INT_MIN) = %q, want clamped %q", got, "-2147483647")
	}
}

func TestWriteU64(t *testing.T) {
	fd, path := openTempFD(t)
	writeU64(fd, 18446744073709551615)
	if got := readAll(t, path); got != "18446744073709551615" {
		t.Errorf("writeU64(max) = %q", got)
	}
}

func TestWriteU64Zero(t *testing.T) {
	fd, path := openTempFD(t)
	writeU64(fd, 0)
	if got := readAll(t, path); got != "0" {
		t.Errorf("writeU64(0) = %q, want %q", got, "0")
	}
}

func TestWritePtr(t *testing.T) {
	fd, path := openTempFD(t)
	writePtr(fd, 0xdeadbeef)
	if got := readAll(t, path); got != "0xdeadbeef" {
		t.Errorf("writePtr(0xdeadbeef) = %q, want %q", got, "0xdeadbeef")
	}
}

func TestWritePtrNull(t *testing.T) {
	fd, path := openTempFD(t)
	writePtr(fd, 0)
	if got := readAll(t, path); got != "0x0" {
		t.Errorf("writePtr(0) = %q, want %q", got, "0x0")
	}
}

func TestWriteLiteralInvalidFD(t *testing.T) {
	// fd < 0 must be a safe no-op, never a panic.
	writeLiteral(-1, []byte("ignored"))
	writeI32(-1, 5)
	writeU64(-1, 5)
	writePtr(-1, 5)
	fsyncFd(-1)
}
