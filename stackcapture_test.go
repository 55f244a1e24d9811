// stackcapture_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import "testing"

func TestCaptureStackReturnsFrames(t *testing.T) {
	n := captureStack(0)
	if n == 0 {
		t.Fatal("expected at least one captured frame")
	}
	if n > maxFrames {
		t.Fatalf("captureStack returned %d frames, exceeds maxFrames=%d", n, maxFrames)
	}
}

func TestCaptureStackCappedAtMaxFrames(t *testing.T) {
	n := captureStack(0)
	if n > len(capturedFrames) {
		t.Fatalf("captured frame count %d exceeds buffer size %d", n, len(capturedFrames))
	}
}
