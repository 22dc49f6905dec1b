package host

import (
	extkit "github.com/tarmac-project/extkit"
	"github.com/tarmac-project/extkit/log"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
	pb "google.golang.org/protobuf/proto"
)

const (
	capabilityName = "logging"
	fnInfo         = "Info"
	fnWarn         = "Warn"
	fnError        = "Error"

	hostStatusOK      = int32(200)
	hostStatusPartial = int32(206)
)

// HostCall defines the waPC host function signature used for log delivery.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config holds options for the host driver.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig extkit.RuntimeConfig

	// HostCall overrides the waPC host function used for log delivery.
	HostCall HostCall

	// Fallback receives messages the host failed to accept. Nil drops them;
	// delivery problems never propagate to the logging call site either way.
	Fallback log.Driver

	// Registry, when set, receives the new driver via Install.
	Registry *log.Registry
}

// Driver delivers rendered messages to the host log channel over waPC. Each
// severity maps to its own host function so the host can route and filter
// without parsing the payload.
type Driver struct {
	runtime  extkit.RuntimeConfig
	hostCall HostCall
	fallback log.Driver
}

// Ensure Driver satisfies the log.Driver interface at compile time.
var _ log.Driver = (*Driver)(nil)

// New creates a host driver with namespace defaults and optional host-call
// override, and installs it when a registry is configured.
func New(config Config) (*Driver, error) {
	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = extkit.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	d := &Driver{runtime: runtime, hostCall: hostCall, fallback: config.Fallback}
	if config.Registry != nil {
		config.Registry.Install(d)
	}

	return d, nil
}

// Info delivers an info-severity message to the host.
func (d *Driver) Info(message string) { d.emit(fnInfo, message) }

// Warn delivers a warn-severity message to the host.
func (d *Driver) Warn(message string) { d.emit(fnWarn, message) }

// Error delivers an error-severity message to the host.
func (d *Driver) Error(message string) { d.emit(fnError, message) }

// emit is best-effort. The host acknowledges with an empty reply or a
// protobuf Status; anything other than a 2xx status diverts the message to
// the fallback driver.
func (d *Driver) emit(fn, message string) {
	resp, err := d.hostCall(d.runtime.Namespace, capabilityName, fn, []byte(message))
	if err != nil {
		d.divert(fn, message)
		return
	}

	if len(resp) == 0 {
		return
	}

	var status sdkproto.Status
	if err := pb.Unmarshal(resp, &status); err != nil {
		// Unreadable acknowledgement; the call itself succeeded, so treat
		// the message as delivered.
		return
	}

	switch status.GetCode() {
	case hostStatusOK, hostStatusPartial:
	default:
		d.divert(fn, message)
	}
}

func (d *Driver) divert(fn, message string) {
	if d.fallback == nil {
		return
	}

	switch fn {
	case fnWarn:
		d.fallback.Warn(message)
	case fnError:
		d.fallback.Error(message)
	default:
		d.fallback.Info(message)
	}
}
