package hostmock

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Call records a single host invocation as the component under test made it.
type Call struct {
	// Namespace is the namespace the call was routed to.
	Namespace string

	// Capability is the capability the call was routed to.
	Capability string

	// Function is the function name the call was routed to.
	Function string

	// Payload is the raw payload passed to the host call.
	Payload []byte
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in host calls.
	// Empty acts as a wildcard.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in host calls.
	// Empty acts as a wildcard.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in host calls.
	// Empty acts as a wildcard; log drivers route different severities to
	// different functions, so logging tests usually leave this unset and
	// assert routing through Calls instead.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to each host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for host calls.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// Mock simulates the extension host with routing validation, scripted
// responses, and a call log. Safe for concurrent use.
type Mock struct {
	expectedNamespace  string
	expectedCapability string
	expectedFunction   string
	err                error
	payloadValidator   func([]byte) error
	response           func() []byte
	fail               bool

	mu    sync.Mutex
	calls []Call
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		expectedNamespace:  config.ExpectedNamespace,
		expectedCapability: config.ExpectedCapability,
		expectedFunction:   config.ExpectedFunction,
		err:                config.Error,
		fail:               config.Fail,
		payloadValidator:   config.PayloadValidator,
		response:           config.Response,
	}, nil
}

// HostCall simulates a host call, recording it and validating inputs before
// returning the scripted response or error.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.record(namespace, capability, function, payload)

	// Return user-defined error if Fail is set
	if m.fail && m.err != nil {
		return nil, m.err
	}

	// Return default error if Fail is set but no custom error is provided
	if m.fail {
		return nil, ErrOperationFailed
	}

	// Validate routing; blank expectations are wildcards
	if m.expectedNamespace != "" && m.expectedNamespace != namespace {
		return nil, fmt.Errorf(
			"%w: expected namespace %s, got %s",
			ErrUnexpectedNamespace,
			m.expectedNamespace,
			namespace,
		)
	}

	if m.expectedCapability != "" && m.expectedCapability != capability {
		return nil, fmt.Errorf(
			"%w: expected capability %s, got %s",
			ErrUnexpectedCapability,
			m.expectedCapability,
			capability,
		)
	}

	if m.expectedFunction != "" && m.expectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.expectedFunction, function)
	}

	// Validate payload using user-defined validator, if provided
	if m.payloadValidator != nil {
		if err := m.payloadValidator(payload); err != nil {
			return nil, err
		}
	}

	// Return user-defined response if provided
	if m.response != nil {
		return m.response(), nil
	}

	// Default to no response
	return nil, nil
}

// Calls returns a copy of every recorded call in arrival order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset discards the call log.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

func (m *Mock) record(namespace, capability, function string, payload []byte) {
	buf := make([]byte, len(payload))
	copy(buf, payload)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    buf,
	})
}
