package log

import (
	"errors"
	"sync/atomic"
)

// ErrNoDriver indicates a logging call was made before any driver was
// installed. Logging without a driver is a setup defect, not a runtime
// condition, so the Agent surfaces it as a panic rather than dropping the
// message.
var ErrNoDriver = errors.New("no log driver installed")

// Registry is the slot holding the active Driver. Exactly one driver is
// active per registry at any instant; installing another replaces it
// (last-write-wins) with no mechanism to restore the previous one.
//
// Reads are a single atomic pointer load, so logging calls stay lock-free
// and allocation-free on the lookup path. Installation may race with
// in-flight logging calls: each call observes either the old or the new
// driver, never a torn state.
type Registry struct {
	driver atomic.Pointer[Driver]
}

// NewRegistry returns an empty Registry. The zero value is also usable.
func NewRegistry() *Registry {
	return &Registry{}
}

// Install makes d the active driver, replacing any previous one. The registry
// holds a non-owning reference; whoever constructed d remains responsible for
// its lifetime. Installing a nil driver is a programming error and panics.
func (r *Registry) Install(d Driver) {
	if d == nil {
		panic("log: Install called with a nil driver")
	}
	r.driver.Store(&d)
}

// Reset empties the slot. Intended for test isolation; production code
// installs a driver once at module start and leaves it in place.
func (r *Registry) Reset() {
	r.driver.Store(nil)
}

// Installed reports whether a driver is currently active.
func (r *Registry) Installed() bool {
	return r.driver.Load() != nil
}

// Lookup returns the active driver, or ErrNoDriver when the slot is empty.
func (r *Registry) Lookup() (Driver, error) {
	p := r.driver.Load()
	if p == nil {
		return nil, ErrNoDriver
	}
	return *p, nil
}

// Active returns the active driver and panics with ErrNoDriver when the slot
// is empty. The Agent resolves through Active so that logging before
// installation fails loudly instead of silently discarding diagnostics.
func (r *Registry) Active() Driver {
	p := r.driver.Load()
	if p == nil {
		panic(ErrNoDriver)
	}
	return *p
}

// defaultRegistry backs the package-level convenience API. Most modules have
// exactly one driver for their whole lifetime and never need a second
// registry; tests that want isolation construct their own via NewRegistry.
var defaultRegistry = NewRegistry()

// Default returns the process-wide default registry.
func Default() *Registry { return defaultRegistry }

// Install makes d the active driver of the default registry.
func Install(d Driver) { defaultRegistry.Install(d) }

// Reset empties the default registry slot.
func Reset() { defaultRegistry.Reset() }

// Installed reports whether the default registry has an active driver.
func Installed() bool { return defaultRegistry.Installed() }
