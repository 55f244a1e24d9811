// atomicwriter.go: the atomic report writer
//
// Writes a formatted report to a uniquely-named *.crash file via a
// temp-file-then-rename sequence, then prunes oldest reports beyond
// Config.MaxReports. Grounded on the rotatefile pattern seen in the
// retrieval pack (oldest-first pruning by directory listing) generalized
// from numbered rotation suffixes to crash-report timestamps.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// writeReportAtomically formats r per cfg.Format and writes it to a unique
// file in cfg.ReportDir, returning the final path on success. On any
// failure it returns "", false and reports the error via handleError.
func writeReportAtomically(r CrashReport, cfg Config) (string, bool) {
	if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
		handleError(wrapError(err, ErrCodeAtomicWriteFailed, "failed to create report directory"))
		return "", false
	}

	content := r.Format(cfg.Format)

	tempName := fmt.Sprintf("temp_%s.crash", randomHex(16))
	tempPath := filepath.Join(cfg.ReportDir, tempName)

	if err := os.WriteFile(tempPath, []byte(content), 0644); err != nil {
		handleError(wrapError(err, ErrCodeAtomicWriteFailed, "failed to write temp report file"))
		_ = os.Remove(tempPath)
		return "", false
	}

	finalName := reportFileName(r, r.AppInfo.Name)
	finalPath := filepath.Join(cfg.ReportDir, finalName)

	if err := os.Rename(tempPath, finalPath); err != nil {
		handleError(wrapError(err, ErrCodeAtomicWriteFailed, "failed to rename temp report into place"))
		_ = os.Remove(tempPath)
		return "", false
	}

	pruneOldReports(cfg.ReportDir, cfg.MaxReports)

	return finalPath, true
}

// reportFileName builds <appName>_<yyyyMMdd_HHmmss>_<pid>_<8-hex>.crash,
// with spaces in appName replaced by underscores so the result is always a
// single filesystem-safe token.
func reportFileName(r CrashReport, appName string) string {
	if appName == "" {
		appName = "app"
	}
	appName = strings.ReplaceAll(appName, " ", "_")
	ts := r.Timestamp.UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%d_%s.crash", appName, ts, os.Getpid(), randomHex(4))
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unrecoverable entropy
		// starvation; fall back to a fixed, clearly-marked value rather
		// than propagating an error from a best-effort filename helper.
		return "deadbeef"
	}
	return hex.EncodeToString(b)
}

// pruneOldReports deletes the oldest *.crash files in dir beyond the
// maxReports newest, oldest-first. maxReports <= 0 means unlimited, so no
// pruning occurs.
func pruneOldReports(dir string, maxReports int) {
	if maxReports <= 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	type crashFile struct {
		name    string
		modTime int64
	}
	var files []crashFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".crash" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, crashFile{name: e.Name(), modTime: info.ModTime().UnixNano()})
	}

	if len(files) <= maxReports {
		return
	}

	sort.Slice(files, func(i, j int) bool { return files[i].modTime < files[j].modTime })

	toRemove := len(files) - maxReports
	for i := 0; i < toRemove; i++ {
		_ = os.Remove(filepath.Join(dir, files[i].name))
	}
}
