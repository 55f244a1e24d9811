// config_loader.go: environment-variable configuration overrides
//
// Supplements, never replaces, programmatic Configure()/SetConfiguration():
// a deployment that wants to tune crashguard purely from its environment
// can call LoadConfigFromEnv(NewConfig()) and get the same Config the
// typed API would produce.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"os"
	"strconv"
)

// LoadConfigFromEnv returns a copy of base with any recognized environment
// variable applied on top. Unset or unparsable variables leave the
// corresponding field untouched.
//
//   - CRASHGUARD_FORMAT: plainText|json|xml
//   - CRASHGUARD_DETAIL_LEVEL: minimal|standard|extended
//   - CRASHGUARD_MAX_REPORTS: non-negative integer
//   - CRASHGUARD_INCLUDE_SYMBOLICATION: true|false
//   - CRASHGUARD_REPORT_DIR: directory path
func LoadConfigFromEnv(base Config) Config {
	cfg := base

	if v := os.Getenv("CRASHGUARD_FORMAT"); v != "" {
		if f, err := ParseReportFormat(v); err == nil {
			cfg.Format = f
		}
	}

	if v := os.Getenv("CRASHGUARD_DETAIL_LEVEL"); v != "" {
		if d, err := ParseDetailLevel(v); err == nil {
			cfg.DetailLevel = d
		}
	}

	if v := os.Getenv("CRASHGUARD_MAX_REPORTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxReports = n
		}
	}

	if v := os.Getenv("CRASHGUARD_INCLUDE_SYMBOLICATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeSymbolication = b
		}
	}

	if v := os.Getenv("CRASHGUARD_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}

	return cfg
}
