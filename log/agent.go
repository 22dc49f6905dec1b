package log

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBadFormat indicates a format string whose verbs do not match the
// supplied arguments. Rendering panics with this error wrapped, because a
// mismatched format is a defect at the call site, not input to tolerate.
var ErrBadFormat = errors.New("log format does not match its arguments")

// Agent is the logging capability attached to components. It renders a format
// string with its arguments and dispatches the result to whichever driver the
// registry currently holds. The Agent carries no state besides the registry
// reference, so a single instance can be shared freely or embedded per
// component without coordination.
type Agent struct {
	registry *Registry
}

// NewAgent returns an Agent bound to the given registry. A nil registry binds
// the Agent to the package default.
func NewAgent(registry *Registry) *Agent {
	if registry == nil {
		registry = defaultRegistry
	}
	return &Agent{registry: registry}
}

// Info renders the format string and delivers it at info severity.
func (a *Agent) Info(format string, args ...any) {
	msg := render(format, args)
	a.registry.Active().Info(msg)
}

// Warn renders the format string and delivers it at warn severity.
func (a *Agent) Warn(format string, args ...any) {
	msg := render(format, args)
	a.registry.Active().Warn(msg)
}

// Error renders the format string and delivers it at error severity.
func (a *Agent) Error(format string, args ...any) {
	msg := render(format, args)
	a.registry.Active().Error(msg)
}

// Log dispatches at an explicit severity. Useful when severity is data
// rather than a fixed call site.
func (a *Agent) Log(severity Severity, format string, args ...any) {
	msg := render(format, args)
	d := a.registry.Active()
	switch severity {
	case SeverityWarn:
		d.Warn(msg)
	case SeverityError:
		d.Error(msg)
	default:
		d.Info(msg)
	}
}

// badFormatMarker matches the "%!v(" and "%!(" markers fmt embeds in its
// output when verbs and arguments disagree.
var badFormatMarker = regexp.MustCompile(`%![a-zA-Z]?\(`)

// render produces the final message string. Rendering happens before the
// driver lookup so a broken format fails identically whether or not a driver
// is installed.
//
// fmt reports verb/argument mismatches by embedding markers in its output
// instead of returning an error; render treats any such marker as a
// call-site defect and panics with ErrBadFormat.
func render(format string, args []any) string {
	if len(args) == 0 {
		return format
	}

	msg := fmt.Sprintf(format, args...)
	if badFormatMarker.MatchString(msg) {
		panic(fmt.Errorf("%w: %s", ErrBadFormat, msg))
	}

	return msg
}

// defaultAgent backs the package-level logging functions.
var defaultAgent = NewAgent(nil)

// Info logs through the default registry at info severity.
func Info(format string, args ...any) { defaultAgent.Info(format, args...) }

// Warn logs through the default registry at warn severity.
func Warn(format string, args ...any) { defaultAgent.Warn(format, args...) }

// Error logs through the default registry at error severity.
func Error(format string, args ...any) { defaultAgent.Error(format, args...) }
