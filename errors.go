// errors.go: error handling integration for crashguard
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package crashguard

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/agilira/go-errors"
)

// Error codes for crashguard. Most are internal-diagnostic codes handed only
// to the package's ErrorHandler. The exception is ErrCodeInvalidConfig:
// Configure returns it for an unusable report directory, and
// SetConfiguration returns it (via Config.Validate) for an invalid Config.
const (
	ErrCodeRawLogOpenFailed  errors.ErrorCode = "CRASHGUARD_RAWLOG_OPEN_FAILED"
	ErrCodeHandlerInstall    errors.ErrorCode = "CRASHGUARD_HANDLER_INSTALL_FAILED"
	ErrCodeInvalidConfig     errors.ErrorCode = "CRASHGUARD_INVALID_CONFIG"
	ErrCodeRawLogParseFailed errors.ErrorCode = "CRASHGUARD_RAWLOG_PARSE_FAILED"
	ErrCodeAtomicWriteFailed errors.ErrorCode = "CRASHGUARD_ATOMIC_WRITE_FAILED"
	ErrCodeSymbolication     errors.ErrorCode = "CRASHGUARD_SYMBOLICATION_FAILED"
)

// ErrorHandler receives internal diagnostics crashguard is contractually
// required to swallow on its public surface but that a caller
// may still want to observe, e.g. for its own operational logging.
type ErrorHandler func(err *errors.Error)

// retryableCodes classifies which of crashguard's own error codes describe
// a condition worth retrying (e.g. a transient open failure) versus one
// that won't resolve without caller intervention (e.g. a malformed
// Config). crashguard's failure modes are small and fixed, so the
// classification is a static table keyed by code.
var retryableCodes = map[errors.ErrorCode]bool{
	ErrCodeRawLogOpenFailed:  true,
	ErrCodeAtomicWriteFailed: true,
	ErrCodeRawLogParseFailed: false,
	ErrCodeHandlerInstall:    false,
	ErrCodeInvalidConfig:     false,
	ErrCodeSymbolication:     false,
}

// IsRetryableCode reports whether a crashguard error code describes a
// condition a caller might reasonably retry (e.g. after freeing disk space
// or fixing directory permissions).
func IsRetryableCode(code errors.ErrorCode) bool {
	return retryableCodes[code]
}

// severityToPriority maps the go-errors severity string onto crashguard's
// own diagnostic log levels.
func severityToPriority(severity string) Priority {
	switch severity {
	case "critical":
		return LogCrit
	case "warning":
		return LogWarning
	default:
		return LogErr
	}
}

var defaultErrorHandler ErrorHandler = func(err *errors.Error) {
	fmt.Fprintf(os.Stderr, "%s [%s] crashguard: %s: %s\n",
		time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		severityToPriority(err.Severity), err.Code, err.Message)
}

var currentErrorHandler = defaultErrorHandler

// SetErrorHandler overrides the handler used for swallowed internal errors.
// Passing nil restores the default (stderr) handler.
func SetErrorHandler(handler ErrorHandler) {
	if handler == nil {
		currentErrorHandler = defaultErrorHandler
		return
	}
	currentErrorHandler = handler
}

func handleError(err *errors.Error) {
	if err == nil {
		return
	}
	if err.Context == nil {
		err.Context = make(map[string]interface{})
	}
	err.Context["go_version"] = runtime.Version()
	err.Context["retryable"] = IsRetryableCode(err.Code)
	currentErrorHandler(err)
}

// attachCallerContext records the immediate caller of the crashguard
// constructor (newError/wrapError) that invokes it, two frames up.
func attachCallerContext(err *errors.Error) {
	if pc, file, line, ok := runtime.Caller(2); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			_ = err.WithContext("caller_func", fn.Name())
		}
		_ = err.WithContext("caller_file", file)
		_ = err.WithContext("caller_line", line)
	}
}

// newError builds a *errors.Error with standard crashguard context and
// caller location, mirroring the NewLoggerError pattern.
func newError(code errors.ErrorCode, message string) *errors.Error {
	err := errors.New(code, message).
		WithSeverity("error").
		WithContext("component", "crashguard").
		WithContext("timestamp", time.Now().UTC())
	attachCallerContext(err)
	return err
}

func newErrorWithField(code errors.ErrorCode, message, field, value string) *errors.Error {
	return errors.NewWithField(code, message, field, value).
		WithSeverity("error").
		WithContext("component", "crashguard").
		WithContext("timestamp", time.Now().UTC())
}

func wrapError(originalErr error, code errors.ErrorCode, message string) *errors.Error {
	err := errors.Wrap(originalErr, code, message).
		WithSeverity("error").
		WithContext("component", "crashguard").
		WithContext("timestamp", time.Now().UTC())
	attachCallerContext(err)
	return err
}
