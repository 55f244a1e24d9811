// appinfo.go: application-identity collector
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import "os"

// ApplicationInfo identifies the process that produced a crash report.
// It is immutable once set by Configure.
type ApplicationInfo struct {
	Name    string
	Version string
	Path    string
}

// defaultApplicationInfo fills in ApplicationInfo fields the caller left
// unset at Configure time. Collectors never raise; a missing value is
// replaced with a readable placeholder instead.
func defaultApplicationInfo(name, version, path string) ApplicationInfo {
	info := ApplicationInfo{Name: name, Version: version, Path: path}
	if info.Name == "" {
		if exe, err := os.Executable(); err == nil {
			info.Name = exe
		} else {
			info.Name = "Unknown"
		}
	}
	if info.Version == "" {
		info.Version = "Unknown"
	}
	if info.Path == "" {
		if len(os.Args) > 0 {
			info.Path = os.Args[0]
		}
	}
	return info
}
