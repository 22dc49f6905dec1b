package metered

import (
	"errors"
	"regexp"

	extkit "github.com/tarmac-project/extkit"
	"github.com/tarmac-project/extkit/log"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"

	defaultPrefix = "extkit_log"
)

var (
	// ErrNextNil is returned when no inner driver is provided.
	ErrNextNil = errors.New("next driver cannot be nil")

	// ErrInvalidPrefix indicates a metric prefix that does not match the supported format.
	ErrInvalidPrefix = errors.New("metric prefix is invalid")

	// isPrefixValid validates metric prefixes using the same pattern as host callback validation.
	isPrefixValid = regexp.MustCompile(`^[a-zA-Z0-9_:]+$`)
)

// HostCall defines the waPC host function signature used for counter updates.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config holds options for the metered driver.
type Config struct {
	// Next is the driver that receives every message after counting.
	Next log.Driver

	// Prefix names the counter family; counters are <Prefix>_<severity>_total.
	// Defaults to "extkit_log".
	Prefix string

	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig extkit.RuntimeConfig

	// HostCall overrides the waPC host function used for counter updates.
	HostCall HostCall

	// Registry, when set, receives the new driver via Install.
	Registry *log.Registry
}

// Driver decorates another driver with per-severity host counters, so
// operators can watch error rates without scraping log output. Counter
// updates are best-effort and never delay or drop the wrapped delivery.
type Driver struct {
	next      log.Driver
	namespace string
	hostCall  HostCall
	counters  [3]string
}

// Ensure Driver satisfies the log.Driver interface at compile time.
var _ log.Driver = (*Driver)(nil)

// New creates a metered driver around config.Next and, when configured,
// installs it.
func New(config Config) (*Driver, error) {
	if config.Next == nil {
		return nil, ErrNextNil
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	if !isPrefixValid.MatchString(prefix) {
		return nil, ErrInvalidPrefix
	}

	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = extkit.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	d := &Driver{
		next:      config.Next,
		namespace: runtime.Namespace,
		hostCall:  hostCall,
		counters: [3]string{
			log.SeverityInfo:  prefix + "_info_total",
			log.SeverityWarn:  prefix + "_warn_total",
			log.SeverityError: prefix + "_error_total",
		},
	}
	if config.Registry != nil {
		config.Registry.Install(d)
	}

	return d, nil
}

// Info counts and forwards an info-severity message.
func (d *Driver) Info(message string) {
	d.count(log.SeverityInfo)
	d.next.Info(message)
}

// Warn counts and forwards a warn-severity message.
func (d *Driver) Warn(message string) {
	d.count(log.SeverityWarn)
	d.next.Warn(message)
}

// Error counts and forwards an error-severity message.
func (d *Driver) Error(message string) {
	d.count(log.SeverityError)
	d.next.Error(message)
}

// count increments the severity counter as a best-effort host call.
func (d *Driver) count(severity log.Severity) {
	payload, err := (&proto.MetricsCounter{Name: d.counters[severity]}).MarshalVT()
	if err != nil {
		return
	}
	_, _ = d.hostCall(d.namespace, capabilityName, fnCounter, payload)
}
