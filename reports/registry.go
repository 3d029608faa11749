// Package reports keeps the ordered registry of runnable report actions.
// Selection never changes execution order: actions always run in
// registration order.
package reports

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Action is one runnable report.
type Action struct {
	Name        string
	Description string
	Run         func() error
}

// Registry is an ordered set of actions.
type Registry struct {
	actions []Action
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Register(a Action) {
	r.actions = append(r.actions, a)
}

// Actions returns all registered actions in registration order.
func (r *Registry) Actions() []Action {
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Names returns the registered action names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for _, a := range r.actions {
		names = append(names, a.Name)
	}
	return names
}

// Enabled filters to the selected actions, preserving registration order.
func (r *Registry) Enabled(selected mapset.Set[string]) []Action {
	var out []Action
	for _, a := range r.actions {
		if selected.Contains(a.Name) {
			out = append(out, a)
		}
	}
	return out
}

// FromList parses an ENABLE_REPORTS-style comma-separated list into a
// selection set. Empty entries are ignored.
func FromList(list string) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			set.Add(name)
		}
	}
	return set
}
