// format_xml.go: manual XML report formatter
//
// Generalizes the JSON formatter's manual, zero-reflection approach to XML,
// since nothing else here emits XML
// directly. The free-form thread diagnostics text is wrapped in CDATA so it
// never needs escaping even when it contains control characters; the
// additionalInfo and additional map entries are escaped like other values.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/agilira/crashguard/internal/bufferpool"
)

func formatXML(r CrashReport) string {
	buf := bufferpool.Get()
	defer bufferpool.Put(buf)

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString("<crashReport>\n")

	xmlElem(buf, "timestamp", r.Timestamp.UTC().Format("2006-01-02T15:04:05Z"))
	if r.HasSignal {
		xmlElem(buf, "signal", strconv.Itoa(int(r.Signal)))
		xmlElem(buf, "signalName", r.signalDisplayName())
	}
	if r.Reason != "" {
		xmlElem(buf, "reason", r.Reason)
	}

	buf.WriteString("  <applicationInfo>\n")
	xmlElemIndented(buf, "name", r.AppInfo.Name, 4)
	xmlElemIndented(buf, "version", r.AppInfo.Version, 4)
	xmlElemIndented(buf, "path", r.AppInfo.Path, 4)
	buf.WriteString("  </applicationInfo>\n")

	buf.WriteString("  <systemInfo>\n")
	xmlElemIndented(buf, "cpuArchitecture", r.SystemInfo.Architecture, 4)
	xmlElemIndented(buf, "osName", r.SystemInfo.OSName, 4)
	xmlElemIndented(buf, "osVersion", r.SystemInfo.OSVersion, 4)
	xmlElemIndented(buf, "kernelVersion", r.SystemInfo.KernelVersion, 4)
	writeXMLStringMap(buf, "additional", r.SystemInfo.Additional, 4)
	buf.WriteString("  </systemInfo>\n")

	buf.WriteString("  <threadInfo>\n")
	xmlElemIndented(buf, "currentThreadID", strconv.FormatUint(r.ThreadInfo.CurrentThreadID, 10), 4)
	xmlElemIndented(buf, "threadCount", strconv.Itoa(r.ThreadInfo.ThreadCount), 4)
	writeXMLCDATAIndented(buf, "diagnostics", r.ThreadInfo.Diagnostics, 4)
	buf.WriteString("  </threadInfo>\n")

	buf.WriteString("  <stackTrace>\n")
	for i, f := range r.StackTrace.Frames {
		buf.WriteString("    <frame>\n")
		xmlElemIndented(buf, "index", strconv.Itoa(i), 6)
		xmlElemIndented(buf, "address", f.Address, 6)
		xmlElemIndented(buf, "symbolName", f.Symbol, 6)
		if f.HasOffset {
			xmlElemIndented(buf, "offset", strconv.FormatUint(f.Offset, 10), 6)
		}
		if f.FileName != "" {
			xmlElemIndented(buf, "fileName", f.FileName, 6)
		}
		if f.LineNumber > 0 {
			xmlElemIndented(buf, "lineNumber", strconv.Itoa(f.LineNumber), 6)
		}
		buf.WriteString("    </frame>\n")
	}
	buf.WriteString("  </stackTrace>\n")

	writeXMLStringMap(buf, "additionalInfo", r.Additional, 2)

	buf.WriteString("</crashReport>\n")

	return buf.String()
}

func xmlElem(buf *bytes.Buffer, tag, value string) {
	xmlElemIndented(buf, tag, value, 2)
}

func xmlElemIndented(buf *bytes.Buffer, tag, value string, indent int) {
	pad := strings.Repeat(" ", indent)
	buf.WriteString(pad)
	buf.WriteByte('<')
	buf.WriteString(tag)
	buf.WriteByte('>')
	xmlEscape(buf, value)
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func writeXMLCDATAIndented(buf *bytes.Buffer, tag, value string, indent int) {
	pad := strings.Repeat(" ", indent)
	buf.WriteString(pad)
	buf.WriteByte('<')
	buf.WriteString(tag)
	buf.WriteString("><![CDATA[")
	buf.WriteString(strings.ReplaceAll(value, "]]>", "]]]]><![CDATA[>"))
	buf.WriteString("]]></")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func writeXMLStringMap(buf *bytes.Buffer, tag string, m map[string]string, indent int) {
	pad := strings.Repeat(" ", indent)
	buf.WriteString(pad)
	buf.WriteByte('<')
	buf.WriteString(tag)
	buf.WriteString(">\n")
	for k, v := range m {
		buf.WriteString(pad)
		buf.WriteString("  <entry key=\"")
		xmlEscape(buf, k)
		buf.WriteString("\">")
		xmlEscape(buf, v)
		buf.WriteString("</entry>\n")
	}
	buf.WriteString(pad)
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func xmlEscape(buf *bytes.Buffer, s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteByte(s[i])
		}
	}
}
