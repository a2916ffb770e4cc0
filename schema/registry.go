package schema

import "fmt"

// Registry holds the definition of every kind stored in the table.
type Registry struct {
	definitions []*Definition
	byKind      map[Kind]*Definition
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: []*Definition{},
		byKind:      make(map[Kind]*Definition),
	}
}

// Register validates and adds a definition.
func (r *Registry) Register(def Definition) error {
	if err := def.validate(); err != nil {
		return err
	}
	if _, ok := r.byKind[def.Kind]; ok {
		return fmt.Errorf("%w: %s registered twice", ErrInvalidDefinition, def.Kind)
	}
	for _, other := range r.definitions {
		if other.Tag == def.Tag {
			return fmt.Errorf("%w: tag %s shared by %s and %s", ErrInvalidDefinition, def.Tag, other.Kind, def.Kind)
		}
	}

	d := &def
	r.definitions = append(r.definitions, d)
	r.byKind[d.Kind] = d
	return nil
}

// MustRegister is like Register but panics on an invalid definition.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for a kind.
func (r *Registry) Lookup(kind Kind) (*Definition, error) {
	d, ok := r.byKind[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return d, nil
}

// All returns every definition in registration order.
func (r *Registry) All() []*Definition {
	return r.definitions
}
