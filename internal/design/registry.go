package design

import (
	"fmt"
	"sort"
)

// Registry maps slugs to design constructors. Get returns a fresh instance
// each call, so tuning one render never leaks into the next.
type Registry struct {
	designs map[string]func() Design
}

func NewRegistry() *Registry {
	r := &Registry{designs: make(map[string]func() Design)}

	r.designs["kaleidoscope"] = func() Design { return NewKaleidoscope() }
	r.designs["residuals"] = func() Design { return NewResiduals() }
	r.designs["undulations"] = func() Design { return NewUndulations() }
	r.designs["connections"] = func() Design { return NewConnections() }

	return r
}

func (r *Registry) Get(name string) (Design, error) {
	fn, ok := r.designs[name]
	if !ok {
		return nil, fmt.Errorf("unknown design: %s", name)
	}
	return fn(), nil
}

// List returns every registered slug in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.designs))
	for name := range r.designs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a fresh instance of every design, ordered by slug.
func (r *Registry) All() []Design {
	names := r.List()
	out := make([]Design, 0, len(names))
	for _, name := range names {
		out = append(out, r.designs[name]())
	}
	return out
}
