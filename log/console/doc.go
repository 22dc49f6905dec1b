/*
Package console provides a log driver that writes severity-prefixed lines to
an io.Writer pair, defaulting to stdout.

It is the driver of choice for headless runs and local development, where the
host log channel is unavailable or unwanted:

	_, err := console.New(console.Config{Registry: log.Default()})
*/
package console
