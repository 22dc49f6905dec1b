/*
Package log is the logging facade for extension modules built with this SDK.

It separates formatting from emission. An Agent renders a format string with
its arguments and forwards the result to the active Driver; the Driver owns
the physical sink (console, host log channel, a third-party logger) and is
swapped per deployment without touching call sites.

A Registry holds the single active Driver. The typical module installs one
driver at startup (see extkit.Config.LogDriver) and logs through the
package-level functions:

	log.Install(driver)
	log.Info("loaded %d items", count)

Components that want an injectable capability hold an *Agent instead:

	type loader struct {
	    logs *log.Agent
	}

	func (l *loader) run() {
	    l.logs.Info("scanning %s", dir)
	}

Exactly one driver is active per registry; installing another replaces it.
Logging before any install panics with ErrNoDriver — an unconfigured module
must fail loudly rather than silently discard diagnostics. Tests use
Registry.Reset (or a private NewRegistry) for isolation.

Concrete drivers live in the subpackages console, host, logrus, and metered;
mock provides a recording driver for tests.
*/
package log
