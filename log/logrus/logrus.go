package logrus

import (
	sirupsen "github.com/sirupsen/logrus"
	"github.com/tarmac-project/extkit/log"
)

// Config holds options for the logrus driver.
type Config struct {
	// Entry is the logrus entry messages are emitted through. Nil uses the
	// logrus standard logger. Formatting, output, and level filtering all
	// stay on the logrus side; the driver only maps severities.
	Entry *sirupsen.Entry

	// Registry, when set, receives the new driver via Install.
	Registry *log.Registry
}

// Driver bridges the facade to a logrus logger, for modules embedded in
// applications that already standardized on logrus.
type Driver struct {
	entry *sirupsen.Entry
}

// Ensure Driver satisfies the log.Driver interface at compile time.
var _ log.Driver = (*Driver)(nil)

// New creates a logrus driver and, when configured, installs it.
func New(config Config) (*Driver, error) {
	entry := config.Entry
	if entry == nil {
		entry = sirupsen.NewEntry(sirupsen.StandardLogger())
	}

	d := &Driver{entry: entry}
	if config.Registry != nil {
		config.Registry.Install(d)
	}

	return d, nil
}

// Info emits at logrus info level.
func (d *Driver) Info(message string) { d.entry.Info(message) }

// Warn emits at logrus warn level.
func (d *Driver) Warn(message string) { d.entry.Warn(message) }

// Error emits at logrus error level.
func (d *Driver) Error(message string) { d.entry.Error(message) }
