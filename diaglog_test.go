// diaglog_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogfRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Logger: &buf, LogLevel: LogWarning}

	logf(cfg, LogDebug, "debug message")
	if buf.Len() != 0 {
		t.Errorf("expected debug message to be filtered out, got %q", buf.String())
	}

	logf(cfg, LogErr, "error message %d", 42)
	if !strings.Contains(buf.String(), "error message 42") {
		t.Errorf("expected error message to be logged, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[ERROR]") {
		t.Errorf("expected level tag in output, got %q", buf.String())
	}
}

func TestLogfNilLoggerIsNoop(t *testing.T) {
	cfg := Config{Logger: nil, LogLevel: LogDebug}
	logf(cfg, LogEmerg, "should not panic")
}

func TestPriorityString(t *testing.T) {
	if LogCrit.String() != "CRITICAL" {
		t.Errorf("LogCrit.String() = %q, want CRITICAL", LogCrit.String())
	}
	if Priority(99).String() != "UNKNOWN" {
		t.Errorf("unknown priority should stringify to UNKNOWN")
	}
}
