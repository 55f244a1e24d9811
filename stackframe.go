// stackframe.go: StackTrace/StackFrame types shared by the symbolicator
// and the report formatters
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

// StackFrame describes one resolved (or best-effort) stack frame.
type StackFrame struct {
	Address    string
	Symbol     string
	Offset     uint64
	HasOffset  bool
	FileName   string
	LineNumber int
}

// StackTrace is an ordered sequence of frames, innermost call first.
type StackTrace struct {
	Frames []StackFrame
}
