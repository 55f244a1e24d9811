// timecache.go: cached wall-clock access for recovery-phase and facade code
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"time"

	timecache "github.com/agilira/go-timecache"
)

// now returns the current wall-clock time via the shared cached clock.
//
// This is used anywhere crashguard needs "now" outside the signal-phase path:
// manual/simulated report timestamps, a recovered report whose raw log has
// no timestamp, and diagnostic log lines. The atomic writer's filename takes
// the report's own timestamp, and pruning compares file modification times.
// It is never called from the signal handler
// itself - refreshing the cache is not async-signal-safe, so the raw-log
// writer takes time.Now().Unix() directly instead (see rawwriter.go).
func now() time.Time {
	return timecache.CachedTime()
}

// timeFromUnix converts a recovered raw-log timestamp (seconds since the
// epoch) back into a time.Time.
func timeFromUnix(sec int64) time.Time {
	return time.Unix(sec, 0)
}
