// format_json.go: manual, zero-reflection JSON report formatter
//
// Grounded on escapeStringFast: a single-pass scan that
// copies runs of safe bytes and only escapes what actually needs it.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"bytes"
	"strconv"

	"github.com/agilira/crashguard/internal/bufferpool"
)

func formatJSON(r CrashReport) string {
	buf := bufferpool.Get()
	defer bufferpool.Put(buf)

	buf.WriteByte('{')

	writeJSONKey(buf, "timestamp", true)
	writeJSONString(buf, r.Timestamp.UTC().Format("2006-01-02T15:04:05Z"))

	if r.HasSignal {
		writeJSONKey(buf, "signal", false)
		buf.WriteString(strconv.Itoa(int(r.Signal)))
		writeJSONKey(buf, "signalName", false)
		writeJSONString(buf, r.signalDisplayName())
	}
	if r.Reason != "" {
		writeJSONKey(buf, "reason", false)
		writeJSONString(buf, r.Reason)
	}

	writeJSONKey(buf, "applicationInfo", false)
	buf.WriteByte('{')
	writeJSONKey(buf, "name", true)
	writeJSONString(buf, r.AppInfo.Name)
	writeJSONKey(buf, "version", false)
	writeJSONString(buf, r.AppInfo.Version)
	writeJSONKey(buf, "path", false)
	writeJSONString(buf, r.AppInfo.Path)
	buf.WriteByte('}')

	writeJSONKey(buf, "systemInfo", false)
	buf.WriteByte('{')
	writeJSONKey(buf, "cpuArchitecture", true)
	writeJSONString(buf, r.SystemInfo.Architecture)
	writeJSONKey(buf, "osName", false)
	writeJSONString(buf, r.SystemInfo.OSName)
	writeJSONKey(buf, "osVersion", false)
	writeJSONString(buf, r.SystemInfo.OSVersion)
	writeJSONKey(buf, "kernelVersion", false)
	writeJSONString(buf, r.SystemInfo.KernelVersion)
	writeJSONKey(buf, "additional", false)
	writeJSONStringMap(buf, r.SystemInfo.Additional)
	buf.WriteByte('}')

	writeJSONKey(buf, "threadInfo", false)
	buf.WriteByte('{')
	writeJSONKey(buf, "currentThreadID", true)
	buf.WriteString(strconv.FormatUint(r.ThreadInfo.CurrentThreadID, 10))
	writeJSONKey(buf, "threadCount", false)
	buf.WriteString(strconv.Itoa(r.ThreadInfo.ThreadCount))
	writeJSONKey(buf, "diagnostics", false)
	writeJSONString(buf, r.ThreadInfo.Diagnostics)
	buf.WriteByte('}')

	writeJSONKey(buf, "stackTrace", false)
	buf.WriteByte('[')
	for i, f := range r.StackTrace.Frames {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		writeJSONKey(buf, "index", true)
		buf.WriteString(strconv.Itoa(i))
		writeJSONKey(buf, "address", false)
		writeJSONString(buf, f.Address)
		writeJSONKey(buf, "symbolName", false)
		writeJSONString(buf, f.Symbol)
		if f.HasOffset {
			writeJSONKey(buf, "offset", false)
			buf.WriteString(strconv.FormatUint(f.Offset, 10))
		}
		if f.FileName != "" {
			writeJSONKey(buf, "fileName", false)
			writeJSONString(buf, f.FileName)
		}
		if f.LineNumber > 0 {
			writeJSONKey(buf, "lineNumber", false)
			buf.WriteString(strconv.Itoa(f.LineNumber))
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	writeJSONKey(buf, "additionalInfo", false)
	writeJSONStringMap(buf, r.Additional)

	buf.WriteByte('}')

	return buf.String()
}

func writeJSONKey(buf *bytes.Buffer, key string, first bool) {
	if !first {
		buf.WriteByte(',')
	}
	buf.WriteByte('"')
	buf.WriteString(key)
	buf.WriteString(`":`)
}

func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 32 && b != '"' && b != '\\' {
			continue
		}
		if i > start {
			buf.WriteString(s[start:i])
		}
		switch b {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString("\\u00")
			const hex = "0123456789abcdef"
			buf.WriteByte(hex[b>>4])
			buf.WriteByte(hex[b&0xf])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
	buf.WriteByte('"')
}

func writeJSONStringMap(buf *bytes.Buffer, m map[string]string) {
	buf.WriteByte('{')
	first := true
	for k, v := range m {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeJSONString(buf, k)
		buf.WriteByte(':')
		writeJSONString(buf, v)
	}
	buf.WriteByte('}')
}
