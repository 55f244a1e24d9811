// symbolicate_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"strings"
	"testing"
)

func TestSymbolicateNilAddress(t *testing.T) {
	trace := symbolicate([]uintptr{0}, false)
	if len(trace.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(trace.Frames))
	}
	f := trace.Frames[0]
	if f.Address != "0x0 (nil address)" || f.Symbol != "<nil address pointer>" {
		t.Errorf("unexpected nil-address frame: %+v", f)
	}
}

func TestSymbolicateKnownFunction(t *testing.T) {
	n := captureStack(0)
	trace := symbolicate(capturedFrames[:n], false)
	if len(trace.Frames) == 0 {
		t.Fatal("expected at least one frame")
	}
	found := false
	for _, f := range trace.Frames {
		if strings.Contains(f.Symbol, "crashguard") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a frame symbol referencing this package, got %+v", trace.Frames)
	}
}

func TestSymbolicateUnresolvableAddressFallsBack(t *testing.T) {
	trace := symbolicate([]uintptr{0xdeadbeef}, false)
	if len(trace.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(trace.Frames))
	}
	f := trace.Frames[0]
	if f.Symbol != "<dladdr failed>" {
		t.Errorf("expected fallback symbol for an unresolvable address, got %q", f.Symbol)
	}
}
