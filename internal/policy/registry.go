/* ============================================================= *\
   registry.go

   A name -> factory registry so the engine can assign policies by
   string, the way the simulator's per-ASN override table and
   base-policy-name setting are expressed (spec.md §5.2). Mirrors the
   pack's "register everything by name in an init-time map" convention.
\* ============================================================= */

package policy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Emeline-1/asgraphsim/internal/asgraph"
)

// Factory builds a fresh Policy instance for one AS. The AS argument is
// informational only (a factory is free to ignore it); the weak
// back-reference is wired separately via asgraph.AS.Initialize, after
// the factory has returned, so that every policy variant gets the same
// two-phase construction regardless of whether it needs the AS at
// construction time.
type Factory func(as *asgraph.AS) asgraph.Policy

var (
	registryMu sync.Mutex
	registry   = map[string]Factory{}
)

func init() {
	Register("BGPSimple", func(*asgraph.AS) asgraph.Policy { return NewBGPSimple() })
	Register("NoExport", func(*asgraph.AS) asgraph.Policy { return NewNoExportPolicy() })
}

// Register adds name to the registry. Re-registering an existing name
// overwrites it; this repo's own init() registers each name once, but a
// caller embedding this package as a library may want to replace the
// defaults.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	f, ok := registry[name]
	return f, ok
}

// Names returns every registered policy name, sorted, for CLI help text
// and error messages.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up name and constructs a policy for as, returning an error
// that lists the known names if name isn't registered.
func New(name string, as *asgraph.AS) (asgraph.Policy, error) {
	factory, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("policy: unknown policy %q (known: %v)", name, Names())
	}
	return factory(as), nil
}
