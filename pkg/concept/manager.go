package concept

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ovixiao/lre/pkg/errs"
	"github.com/ovixiao/lre/pkg/rule"
)

// Manager is the global concept-name registry: built once during
// training, then shared by reference with every compiled ConceptArg for
// match-time resolution (spec §3.8, §9's late-bound-reference strategy).
type Manager struct {
	byName map[string]*Concept
}

// NewManager builds an empty registry.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]*Concept)}
}

// Add registers a concept. Re-registering an existing name is rejected.
func (m *Manager) Add(c *Concept) error {
	if _, ok := m.byName[c.Name]; ok {
		return fmt.Errorf("%w: concept %q already registered", errs.Semantic, c.Name)
	}
	m.byName[c.Name] = c
	return nil
}

// Get looks a concept up by exact name, erroring on a miss. A miss that
// shares a prefix with a registered name gets a "did you mean" hint, per
// spec §3.12.
func (m *Manager) Get(name string) (*Concept, error) {
	if c, ok := m.byName[name]; ok {
		return c, nil
	}
	if hint := suggest(m.names(), name); hint != "" {
		return nil, fmt.Errorf("%w: concept %q not found, did you mean one of: %s", errs.Resolve, name, hint)
	}
	return nil, fmt.Errorf("%w: concept %q not found", errs.Resolve, name)
}

// Resolve implements rule.ConceptResolver for ConceptArg.
func (m *Manager) Resolve(name string) (rule.Matcher, error) {
	return m.Get(name)
}

// Iter visits every registered concept in name order.
func (m *Manager) Iter(fn func(*Concept)) {
	for _, name := range m.names() {
		fn(m.byName[name])
	}
}

func (m *Manager) names() []string {
	names := make([]string, 0, len(m.byName))
	for name := range m.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suggest returns a comma-joined list of registered names in a prefix
// relationship with query (either side), for a ResolveError hint.
func suggest(names []string, query string) string {
	var hits []string
	for _, n := range names {
		if strings.HasPrefix(n, query) || strings.HasPrefix(query, n) {
			hits = append(hits, n)
		}
	}
	return strings.Join(hits, ", ")
}
