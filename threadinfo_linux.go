//go:build linux

// threadinfo_linux.go: Linux per-thread diagnostics
//
// Enumerates /proc/self/task/*, reading each thread's status file for its
// Name: and State: fields. Grounded on the field-parsing discipline of
// the /proc/<pid>/stat reader this package's example pack uses for process
// monitoring, adapted here to the per-thread status file and a much
// smaller field set.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func populatePlatformThreadInfo(info *ThreadInfo) {
	entries, err := os.ReadDir("/proc/self/task")
	if err != nil {
		info.Diagnostics = fmt.Sprintf("<failed to enumerate threads: %v>", err)
		return
	}

	var sb strings.Builder
	count := 0
	for _, e := range entries {
		tid := e.Name()
		name, state, ok := readThreadStatus(tid)
		if !ok {
			continue
		}
		count++
		fmt.Fprintf(&sb, "tid=%s name=%s state=%s\n", tid, name, state)
	}

	info.ThreadCount = count
	if sb.Len() == 0 {
		info.Diagnostics = "<no thread diagnostics available>"
	} else {
		info.Diagnostics = sb.String()
	}
}

// readThreadStatus extracts Name: and State: from
// /proc/self/task/<tid>/status.
func readThreadStatus(tid string) (name, state string, ok bool) {
	f, err := os.Open("/proc/self/task/" + tid + "/status")
	if err != nil {
		return "", "", false
	}
	defer f.Close()

	name, state = "Unknown", "Unknown"
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Name:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
		case strings.HasPrefix(line, "State:"):
			state = strings.TrimSpace(strings.TrimPrefix(line, "State:"))
		}
	}
	return name, state, true
}
