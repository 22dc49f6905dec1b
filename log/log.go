package log

import (
	"errors"
	"strings"
)

// Driver is the pluggable logging backend. Implementations receive fully
// rendered messages and deliver them to the physical sink (console stream,
// host log channel, third-party logger). Delivery failures are the driver's
// own concern and must never surface to the component that logged.
type Driver interface {
	// Info delivers an informational message.
	Info(message string)

	// Warn delivers a warning message.
	Warn(message string)

	// Error delivers an error message.
	Error(message string)
}

// Severity classifies a log message and selects which Driver operation a
// rendered message is dispatched to.
type Severity uint8

const (
	// SeverityInfo marks informational messages.
	SeverityInfo Severity = iota

	// SeverityWarn marks warning messages.
	SeverityWarn

	// SeverityError marks error messages.
	SeverityError
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognized input.
var ErrUnknownSeverity = errors.New("unknown severity")

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name into a Severity constant. It accepts
// the names produced by String plus the common "warning" alias.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	}

	return SeverityInfo, ErrUnknownSeverity
}
