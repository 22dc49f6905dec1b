/*
Package hostmock provides a friendly pretend host for waPC calls.

It's designed for SDK development and advanced tests where you want to
validate exactly what a component is sending to the extension host — without
needing a real host running.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect payloads: plug in a PayloadValidator, or read the recorded Calls after the fact.
  - Script responses: return custom bytes or simulate failures.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "extkit",
	  ExpectedCapability: "logging",
	})

	// Inject into a component under test
	d, _ := host.New(host.Config{HostCall: m.HostCall})
	d.Error("archive missing")

	calls := m.Calls() // [{extkit logging Error "archive missing"}]

Behavior

  - Every invocation is recorded in the call log before any validation runs,
    so even rejected calls are observable through Calls.
  - If Fail is true and Error is set, HostCall returns that error; Fail
    without Error returns ErrOperationFailed.
  - Otherwise expectations are enforced for the fields you set; blank fields
    are wildcards. PayloadValidator runs when provided, and Response (when
    set) supplies the return bytes.

Tips

  - Use table-driven tests for different routing and payload cases.
  - Leave ExpectedFunction blank for components that fan out across
    functions (log drivers route one function per severity) and assert the
    routing through Calls instead.
*/
package hostmock
