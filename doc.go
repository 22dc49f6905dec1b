/*
Package extkit provides the core entry point and runtime configuration for
building host-loaded extension modules.

The package exposes New to register a waPC handler and a RuntimeConfig that is
shared by host-facing components (e.g., the host log driver). DefaultNamespace
is used when a namespace is not explicitly provided.

Logging for extension code lives in the log package: components format and
emit through a log.Agent, while the process-wide driver slot holds whichever
backend the module lifecycle installed (console, host channel, logrus, ...).
Passing Config.LogDriver to New is the conventional place to do that install.
*/
package extkit
