//go:build darwin

// symbolicate_darwin.go: opportunistic atos enrichment (macOS's addr2line
// equivalent)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// externalSymbolicate shells out to atos for file:line enrichment. Any
// failure or timeout is swallowed.
func externalSymbolicate(modulePath string, addr uintptr) (file string, line int, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), addrToLineTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "/usr/bin/atos", "-o", modulePath, fmt.Sprintf("0x%x", addr))
	out, err := cmd.Output()
	if err != nil {
		return "", 0, false
	}

	result := strings.TrimSpace(string(out))
	// atos typically prints "symbol (in module) (file:line)"
	open := strings.LastIndex(result, "(")
	shut := strings.LastIndex(result, ")")
	if open < 0 || shut <= open {
		return "", 0, false
	}
	inner := result[open+1 : shut]
	idx := strings.LastIndex(inner, ":")
	if idx < 0 {
		return "", 0, false
	}
	file = inner[:idx]
	lineNum, err := strconv.Atoi(inner[idx+1:])
	if err != nil || file == "" {
		return "", 0, false
	}
	return file, lineNum, true
}
