/*
Package metered provides a log driver decorator that counts deliveries per
severity through the host metrics capability.

Wrap any driver to get <prefix>_info_total, <prefix>_warn_total, and
<prefix>_error_total counters on the host side:

	console, _ := console.New(console.Config{})
	_, err := metered.New(metered.Config{
	    Next:     console,
	    Registry: log.Default(),
	})

Counter updates follow the same best-effort rules as the rest of the metrics
capability: marshal or host-call failures are swallowed and the wrapped
delivery always proceeds.
*/
package metered
