// format_text.go: plain-text report formatter
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"fmt"

	"github.com/agilira/crashguard/internal/bufferpool"
)

func formatPlainText(r CrashReport) string {
	buf := bufferpool.Get()
	defer bufferpool.Put(buf)

	fmt.Fprintf(buf, "CRASH REPORT\n")
	fmt.Fprintf(buf, "============\n")
	fmt.Fprintf(buf, "Date: %s\n", r.Timestamp.UTC().Format("2006-01-02T15:04:05Z"))
	if r.HasSignal {
		fmt.Fprintf(buf, "Signal: %d (%s)\n", r.Signal, r.signalDisplayName())
	}
	if r.Reason != "" {
		fmt.Fprintf(buf, "Reason: %s\n", r.Reason)
	}

	fmt.Fprintf(buf, "\nAPPLICATION INFORMATION\n")
	fmt.Fprintf(buf, "  Name: %s\n", r.AppInfo.Name)
	fmt.Fprintf(buf, "  Version: %s\n", r.AppInfo.Version)
	fmt.Fprintf(buf, "  Path: %s\n", r.AppInfo.Path)

	fmt.Fprintf(buf, "\nSYSTEM INFORMATION\n")
	fmt.Fprintf(buf, "  CPU Architecture: %s\n", r.SystemInfo.Architecture)
	fmt.Fprintf(buf, "  OS Name: %s %s\n", r.SystemInfo.OSName, r.SystemInfo.OSVersion)
	fmt.Fprintf(buf, "  Kernel: %s\n", r.SystemInfo.KernelVersion)
	for k, v := range r.SystemInfo.Additional {
		fmt.Fprintf(buf, "  %s: %s\n", k, v)
	}

	fmt.Fprintf(buf, "\nTHREAD INFORMATION\n")
	fmt.Fprintf(buf, "  Current thread id: %d\n", r.ThreadInfo.CurrentThreadID)
	fmt.Fprintf(buf, "  Thread count: %d\n", r.ThreadInfo.ThreadCount)
	if r.ThreadInfo.Diagnostics != "" {
		fmt.Fprintf(buf, "  Diagnostics:\n%s\n", indentLines(r.ThreadInfo.Diagnostics, "    "))
	}

	fmt.Fprintf(buf, "\nSTACK TRACE\n")
	for i, f := range r.StackTrace.Frames {
		symbol := f.Symbol
		if symbol == "" {
			symbol = "<unknown symbol>"
		}
		fmt.Fprintf(buf, "  [%d] %s - %s", i, symbol, f.Address)
		if f.HasOffset {
			fmt.Fprintf(buf, " +0x%x", f.Offset)
		}
		if f.FileName != "" {
			fmt.Fprintf(buf, "  (%s", f.FileName)
			if f.LineNumber > 0 {
				fmt.Fprintf(buf, ":%d", f.LineNumber)
			}
			fmt.Fprintf(buf, ")")
		}
		fmt.Fprintf(buf, "\n")
	}

	if len(r.Additional) > 0 {
		fmt.Fprintf(buf, "\nAdditional Info\n")
		for k, v := range r.Additional {
			fmt.Fprintf(buf, "  %s: %s\n", k, v)
		}
	}

	return buf.String()
}

func indentLines(s, prefix string) string {
	out := make([]byte, 0, len(s)+len(prefix))
	out = append(out, prefix...)
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		if s[i] == '\n' && i != len(s)-1 {
			out = append(out, prefix...)
		}
	}
	return string(out)
}
