// Package passes holds the process-wide registry of module passes, so a
// driver can select them by their stable name.
package passes

import (
	"slices"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/hlo2tf/ir"
)

// Pass transforms a module in place. A failed pass must leave the failed
// functions untouched, with diagnostics attached.
type Pass interface {
	// Name is the stable, command-line-style identifier of the pass.
	Name() string

	// Description is a one-line summary of the pass.
	Description() string

	// Run applies the pass to the module.
	Run(m *ir.Module) error
}

// Registration describes one registered pass.
type Registration struct {
	Name        string
	Description string

	// New creates a fresh instance of the pass.
	New func() Pass
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Registration)
)

// Register adds a pass to the registry. Registering two passes under the
// same name is a defect and panics. It is meant to be called from init
// functions, mirroring static pass registration.
func Register(reg Registration) {
	mu.Lock()
	defer mu.Unlock()
	if _, found := registry[reg.Name]; found {
		exceptions.Panicf("passes.Register: pass %q registered twice", reg.Name)
	}
	registry[reg.Name] = reg
}

// Get returns the registration of the named pass.
func Get(name string) (Registration, bool) {
	mu.RLock()
	defer mu.RUnlock()
	reg, found := registry[name]
	return reg, found
}

// Names returns the sorted names of all registered passes.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
