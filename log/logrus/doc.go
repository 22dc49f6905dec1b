/*
Package logrus provides a log driver backed by sirupsen/logrus.

Use it when the extension module is embedded in an application that already
routes its logs through logrus; the application keeps one formatting and
output pipeline, and the module's facade feeds into it:

	entry := sirupsen.NewEntry(appLogger)
	_, err := logrus.New(logrus.Config{Entry: entry, Registry: log.Default()})
*/
package logrus
