package alfacrm

import (
	"fmt"
	"sort"
)

// Descriptor describes one API resource: the path segments it lives under,
// whether its URLs carry a branch segment, and the schemas guarding its
// operations. A nil schema means the operation accepts raw input.
type Descriptor struct {
	Name           string
	Path           []string
	BranchRequired bool

	Filter *Schema
	Create *Schema
	Update *Schema
}

// Registry maps resource names to descriptors.
type Registry struct {
	descriptors map[string]*Descriptor
}

// NewRegistry builds a registry from the given descriptors. Duplicate names
// are a programming error and panic at construction.
func NewRegistry(descriptors ...*Descriptor) *Registry {
	r := &Registry{descriptors: make(map[string]*Descriptor, len(descriptors))}

	for _, d := range descriptors {
		if _, exists := r.descriptors[d.Name]; exists {
			panic(fmt.Sprintf("alfacrm: duplicate resource %q", d.Name))
		}

		r.descriptors[d.Name] = d
	}

	return r
}

// Lookup returns the descriptor for a resource name.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	d, ok := r.descriptors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}

	return d, nil
}

// Names returns all registered resource names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
