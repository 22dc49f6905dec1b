/*
Package mock provides an in-memory recording driver for tests.

The driver captures every delivered message with its severity so tests can
assert exactly what reached the backend:

	reg := log.NewRegistry()
	rec := mock.New(mock.Config{Registry: reg})

	agent := log.NewAgent(reg)
	agent.Info("loaded %d items", 42)

	entries := rec.Entries() // [{info "loaded 42 items"}]
*/
package mock
