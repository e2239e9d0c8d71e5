package sections

import (
	"fmt"
	"slices"
)

// Registry maps section names to their definitions.
type Registry struct {
	byName map[string]Section
	order  []string
}

// NewRegistry registers the given sections. Names must be unique.
func NewRegistry(list ...Section) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Section, len(list)),
		order:  make([]string, 0, len(list)),
	}
	for _, s := range list {
		name := s.Name()
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("duplicate section %q", name)
		}
		r.byName[name] = s
		r.order = append(r.order, name)
	}
	return r, nil
}

// Lookup returns the section registered under name.
func (r *Registry) Lookup(name string) (Section, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return s, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}
