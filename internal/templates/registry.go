// Package templates holds the catalog of legal-minutes variants and
// their content-plan builders.
package templates

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/verbale-labs/verbale-core/internal/core/domain"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TemplateRegistry = (*Registry)(nil)

// Registry implements TemplateRegistry with case-insensitive keys.
// Registering an existing key overwrites it, so startup discovery can
// re-register variants idempotently.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]driven.TemplateFactory
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]driven.TemplateFactory),
	}
}

// Register adds or replaces a template factory under name.
func (r *Registry) Register(name string, factory driven.TemplateFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[normalizeKey(name)] = factory
}

// Create instantiates the template registered under name.
// Returns domain.ErrUnknownTemplate when the key is not registered.
func (r *Registry) Create(name string) (driven.Template, error) {
	r.mu.RLock()
	factory, ok := r.factories[normalizeKey(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTemplate, name)
	}
	return factory(), nil
}

// List returns all registered keys, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultRegistry creates a registry with every built-in variant
// registered. Registration order is deterministic; there is no
// import-time side effect, callers own the registry instance.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, factory := range builtinFactories() {
		t := factory()
		r.Register(t.Name(), factory)
	}
	return r
}

func builtinFactories() []driven.TemplateFactory {
	return []driven.TemplateFactory{
		func() driven.Template { return &StandardApproval{} },
		func() driven.Template { return &FullMinutes{} },
		func() driven.Template { return &GenericMinutes{} },
		func() driven.Template { return &AdministratorAppointment{} },
		func() driven.Template { return &RevocationAndAppointment{} },
		func() driven.Template { return &AuditorAppointment{} },
		func() driven.Template { return &SupervisoryBoardAppointment{} },
		func() driven.Template { return &SoleDirector{} },
		func() driven.Template { return &BoardOfDirectors{} },
		func() driven.Template { return &RatificationOfActs{} },
		func() driven.Template { return &SupervisorRevocation{} },
		func() driven.Template { return &IrregularMeeting{} },
		func() driven.Template { return &Corrections{} },
		func() driven.Template { return &DividendDistribution{} },
		func() driven.Template { return &ExpenseReimbursement{} },
	}
}
