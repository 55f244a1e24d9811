// config.go: configuration for the crashguard library
//
// This follows the upstream Config shape: a plain struct with a
// withDefaults() copy-on-write normalizer and a Validate() method,
// rather than a builder or options pattern.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"fmt"
	"io"
)

// Config is the recognized set of options for a crashguard instance.
// All fields have documented defaults.
type Config struct {
	// Format selects the on-disk encoding of final crash reports.
	// Default: PlainText.
	Format ReportFormat

	// DetailLevel controls how much recovery-phase context is collected.
	// Default: Standard.
	DetailLevel DetailLevel

	// MaxReports bounds how many *.crash files are kept in ReportDir.
	// 0 means unlimited. Oldest files are pruned first after each
	// successful atomic write. Default: 10.
	MaxReports int

	// IncludeSymbolication gates the opportunistic addr2line enrichment
	// step in the stack symbolicator. Default: true.
	IncludeSymbolication bool

	// ReportDir is the directory holding the raw log and final reports.
	// Configure() sets this; it has no library default.
	ReportDir string

	// Logger receives crashguard's own operational diagnostics (not the
	// crash report content). Default: io.Discard, i.e. silent.
	Logger io.Writer

	// LogLevel filters which diagnostics reach Logger. Default: LogInfo.
	LogLevel Priority
}

// withDefaults returns a copy of c with a nil Logger replaced by io.Discard.
// It fills in no other field: MaxReports == 0 stays 0 (unlimited), so the
// other documented defaults come only from NewConfig.
func (c Config) withDefaults() Config {
	out := c
	if out.Logger == nil {
		out.Logger = io.Discard
	}
	return out
}

// NewConfig returns a Config with every documented default applied:
// Format=PlainText, DetailLevel=Standard, MaxReports=10,
// IncludeSymbolication=true. This is the supported starting point; a bare
// Config{} literal has MaxReports=0 (unlimited) and Format=PlainText purely
// as zero-value coincidences, not as documented defaults.
func NewConfig() Config {
	return Config{
		Format:               PlainText,
		DetailLevel:          Standard,
		MaxReports:           10,
		IncludeSymbolication: true,
		Logger:               io.Discard,
		LogLevel:             LogInfo,
	}
}

// Validate checks the configuration for internal consistency, returning a
// *errors.Error (via newErrorWithField) describing the first violation.
func (c Config) Validate() error {
	if c.MaxReports < 0 {
		return newErrorWithField(ErrCodeInvalidConfig, "max reports cannot be negative", "max_reports", fmt.Sprintf("%d", c.MaxReports))
	}
	if c.ReportDir == "" {
		return newErrorWithField(ErrCodeInvalidConfig, "report directory must be set", "report_dir", "")
	}
	return nil
}

// Clone returns a copy of c. All fields are values except Logger, whose
// writer is shared between the original and the copy.
func (c Config) Clone() Config {
	return c
}
