// Package internal contains internal implementation details.
package internal

import "github.com/bassosimone/wfqsim"

// NullLogger is a [wfq.Logger] that does not emit logs.
type NullLogger struct{}

// Debug implements wfq.Logger
func (nl *NullLogger) Debug(message string) {
	// nothing
}

// Debugf implements wfq.Logger
func (nl *NullLogger) Debugf(format string, v ...any) {
	// nothing
}

// Info implements wfq.Logger
func (nl *NullLogger) Info(message string) {
	// nothing
}

// Infof implements wfq.Logger
func (nl *NullLogger) Infof(format string, v ...any) {
	// nothing
}

// Warn implements wfq.Logger
func (nl *NullLogger) Warn(message string) {
	// nothing
}

// Warnf implements wfq.Logger
func (nl *NullLogger) Warnf(format string, v ...any) {
	// nothing
}

var _ wfq.Logger = &NullLogger{}
