package mock

import (
	"sync"

	"github.com/tarmac-project/extkit/log"
)

// Entry is a single message captured by the Driver.
type Entry struct {
	// Severity is the driver operation the message arrived through.
	Severity log.Severity

	// Message is the rendered message as delivered.
	Message string
}

// Config holds options for the recording driver.
type Config struct {
	// Registry, when set, receives the new driver via Install. This mirrors
	// how concrete drivers register themselves during construction.
	Registry *log.Registry
}

// Driver records every delivered message in order. Safe for concurrent use.
type Driver struct {
	mu      sync.Mutex
	entries []Entry
}

// Ensure Driver satisfies the log.Driver interface at compile time.
var _ log.Driver = (*Driver)(nil)

// New creates a recording driver and, when configured, installs it.
func New(config Config) *Driver {
	d := &Driver{}
	if config.Registry != nil {
		config.Registry.Install(d)
	}
	return d
}

// Info records an info-severity message.
func (d *Driver) Info(message string) { d.record(log.SeverityInfo, message) }

// Warn records a warn-severity message.
func (d *Driver) Warn(message string) { d.record(log.SeverityWarn, message) }

// Error records an error-severity message.
func (d *Driver) Error(message string) { d.record(log.SeverityError, message) }

func (d *Driver) record(severity log.Severity, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, Entry{Severity: severity, Message: message})
}

// Entries returns a copy of everything recorded so far, in delivery order.
func (d *Driver) Entries() []Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Reset discards all recorded entries.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = nil
}
