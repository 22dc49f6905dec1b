/*
Package host provides the log driver that delivers messages to the extension
host's log channel over waPC.

Each severity maps to its own host function (Info, Warn, Error) under the
"logging" capability, with the rendered message as the raw payload. Delivery
is fire-and-forget: a host-call failure or a non-2xx protobuf Status reply
diverts the message to an optional fallback driver, and nothing ever
propagates back to the logging call site.

Typical wiring at module start:

	fallback, _ := console.New(console.Config{})
	_, err := host.New(host.Config{
	    Fallback: fallback,
	    Registry: log.Default(),
	})
*/
package host
