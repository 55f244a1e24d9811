// threadinfo_test.go
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import "testing"

func TestCollectThreadInfoNeverRaises(t *testing.T) {
	info := collectThreadInfo()
	if info.Diagnostics == "" {
		t.Error("expected a non-empty diagnostics placeholder or dump")
	}
}
