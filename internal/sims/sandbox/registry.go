package sandbox

import "sort"

// Registry maps material ids to their behavior.
type Registry struct {
	byID map[ID]Material
}

// NewRegistry builds a registry holding the given materials. Later entries
// replace earlier ones with the same id.
func NewRegistry(materials ...Material) *Registry {
	r := &Registry{byID: make(map[ID]Material, len(materials))}
	for _, m := range materials {
		r.Register(m)
	}
	return r
}

// DefaultRegistry returns a fresh registry populated with Catalog.
func DefaultRegistry() *Registry {
	return NewRegistry(Catalog()...)
}

// Register inserts m, overwriting any material with the same id.
func (r *Registry) Register(m Material) {
	r.byID[m.ID] = m
}

// Get looks up a material. Unknown ids report false.
func (r *Registry) Get(id ID) (Material, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// All returns every registered material ordered by id.
func (r *Registry) All() []Material {
	out := make([]Material, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Placeable returns every material except Empty, ordered by id.
func (r *Registry) Placeable() []Material {
	all := r.All()
	out := all[:0]
	for _, m := range all {
		if m.ID != Empty {
			out = append(out, m)
		}
	}
	return out
}
