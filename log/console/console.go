package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tarmac-project/extkit/log"
)

// Config holds options for the console driver.
type Config struct {
	// Output receives info and warn messages. Defaults to os.Stdout.
	Output io.Writer

	// ErrOutput receives error messages. Defaults to Output.
	ErrOutput io.Writer

	// TimeFormat is a time layout prepended to every line. Empty disables
	// timestamps; most host consoles stamp lines themselves.
	TimeFormat string

	// Registry, when set, receives the new driver via Install.
	Registry *log.Registry
}

// Driver writes severity-prefixed lines to the configured streams.
type Driver struct {
	out        io.Writer
	errOut     io.Writer
	timeFormat string
}

// Ensure Driver satisfies the log.Driver interface at compile time.
var _ log.Driver = (*Driver)(nil)

// New creates a console driver and, when configured, installs it.
func New(config Config) (*Driver, error) {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	errOut := config.ErrOutput
	if errOut == nil {
		errOut = out
	}

	d := &Driver{out: out, errOut: errOut, timeFormat: config.TimeFormat}
	if config.Registry != nil {
		config.Registry.Install(d)
	}

	return d, nil
}

// Info writes an info-severity line to the output stream.
func (d *Driver) Info(message string) { d.write(d.out, "INFO", message) }

// Warn writes a warn-severity line to the output stream.
func (d *Driver) Warn(message string) { d.write(d.out, "WARN", message) }

// Error writes an error-severity line to the error stream.
func (d *Driver) Error(message string) { d.write(d.errOut, "ERROR", message) }

// write emits a single line. Stream failures are swallowed; a broken console
// must never take a logging call site down with it.
func (d *Driver) write(w io.Writer, tag, message string) {
	if d.timeFormat != "" {
		_, _ = fmt.Fprintf(w, "%s [%s] %s\n", time.Now().Format(d.timeFormat), tag, message)
		return
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", tag, message)
}
