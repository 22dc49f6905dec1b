package host_test

import (
	"errors"
	"testing"

	extkit "github.com/tarmac-project/extkit"
	"github.com/tarmac-project/extkit/hostmock"
	"github.com/tarmac-project/extkit/log"
	hostdriver "github.com/tarmac-project/extkit/log/host"
	"github.com/tarmac-project/extkit/log/mock"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	pb "google.golang.org/protobuf/proto"
)

func statusResponse(t *testing.T, code int32, msg string) func() []byte {
	t.Helper()

	b, err := pb.Marshal(&sdkproto.Status{Status: msg, Code: code})
	if err != nil {
		t.Fatalf("failed to marshal status: %v", err)
	}
	return func() []byte { return b }
}

func TestNew(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name      string
		namespace string
		wantNS    string
	}{
		{
			name:      "custom namespace",
			namespace: "custom",
			wantNS:    "custom",
		},
		{
			name:   "default namespace",
			wantNS: extkit.DefaultNamespace,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := hostmock.New(hostmock.Config{})
			if err != nil {
				t.Fatalf("hostmock: %v", err)
			}

			d, err := hostdriver.New(hostdriver.Config{
				SDKConfig: extkit.RuntimeConfig{Namespace: tc.namespace},
				HostCall:  m.HostCall,
			})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			// Exercise the driver and confirm the namespace reached the host.
			d.Info("probe")
			calls := m.Calls()
			if len(calls) != 1 || calls[0].Namespace != tc.wantNS {
				t.Fatalf("expected call in namespace %q, got %+v", tc.wantNS, calls)
			}
		})
	}
}

func TestSeverityRouting(t *testing.T) {
	t.Parallel()

	m, err := hostmock.New(hostmock.Config{
		ExpectedNamespace:  extkit.DefaultNamespace,
		ExpectedCapability: "logging",
	})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	d, err := hostdriver.New(hostdriver.Config{HostCall: m.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	d.Info("loaded 42 items")
	d.Warn("cache is cold")
	d.Error("archive missing")

	calls := m.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 host calls, got %d", len(calls))
	}

	want := []struct {
		function string
		payload  string
	}{
		{"Info", "loaded 42 items"},
		{"Warn", "cache is cold"},
		{"Error", "archive missing"},
	}

	for i, w := range want {
		if calls[i].Function != w.function || string(calls[i].Payload) != w.payload {
			t.Fatalf("call %d mismatch: want %s %q, got %s %q",
				i, w.function, w.payload, calls[i].Function, calls[i].Payload)
		}
	}
}

func TestFallbackOnHostFailure(t *testing.T) {
	t.Parallel()

	m, err := hostmock.New(hostmock.Config{Fail: true, Error: errors.New("channel closed")})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	fallback := mock.New(mock.Config{})
	d, err := hostdriver.New(hostdriver.Config{HostCall: m.HostCall, Fallback: fallback})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	d.Info("i")
	d.Warn("w")
	d.Error("e")

	want := []mock.Entry{
		{Severity: log.SeverityInfo, Message: "i"},
		{Severity: log.SeverityWarn, Message: "w"},
		{Severity: log.SeverityError, Message: "e"},
	}

	got := fallback.Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d fallback deliveries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fallback delivery %d mismatch: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestNoFallbackConfigured(t *testing.T) {
	t.Parallel()

	m, err := hostmock.New(hostmock.Config{Fail: true})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	d, err := hostdriver.New(hostdriver.Config{HostCall: m.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	// Must not panic or propagate.
	d.Error("dropped")
}

func TestStatusAcknowledgement(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name         string
		response     func(*testing.T) func() []byte
		wantDiverted int
	}{
		{
			name:         "ok status accepted",
			response:     func(t *testing.T) func() []byte { return statusResponse(t, 200, "OK") },
			wantDiverted: 0,
		},
		{
			name:         "partial status accepted",
			response:     func(t *testing.T) func() []byte { return statusResponse(t, 206, "Partial") },
			wantDiverted: 0,
		},
		{
			name:         "server error diverted",
			response:     func(t *testing.T) func() []byte { return statusResponse(t, 500, "Internal Error") },
			wantDiverted: 1,
		},
		{
			name:         "unreadable acknowledgement tolerated",
			response:     func(t *testing.T) func() []byte { return func() []byte { return []byte{0xff, 0xff, 0xff} } },
			wantDiverted: 0,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := hostmock.New(hostmock.Config{Response: tc.response(t)})
			if err != nil {
				t.Fatalf("hostmock: %v", err)
			}

			fallback := mock.New(mock.Config{})
			d, err := hostdriver.New(hostdriver.Config{HostCall: m.HostCall, Fallback: fallback})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			d.Warn("spilled")

			if got := len(fallback.Entries()); got != tc.wantDiverted {
				t.Fatalf("expected %d diverted deliveries, got %d", tc.wantDiverted, got)
			}
		})
	}
}

func TestRegistryInstall(t *testing.T) {
	t.Parallel()

	m, err := hostmock.New(hostmock.Config{})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	reg := log.NewRegistry()
	d, err := hostdriver.New(hostdriver.Config{HostCall: m.HostCall, Registry: reg})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if got := reg.Active(); got != log.Driver(d) {
		t.Fatalf("expected host driver to be active, got %T", got)
	}

	log.NewAgent(reg).Error("archive %s missing", "base\\root.archive")

	calls := m.Calls()
	if len(calls) != 1 || calls[0].Function != "Error" {
		t.Fatalf("expected a single Error host call, got %+v", calls)
	}
	if got := string(calls[0].Payload); got != "archive base\\root.archive missing" {
		t.Fatalf("payload mismatch: %q", got)
	}
}
