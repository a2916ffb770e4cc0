package schema

import (
	"fmt"
	"strings"
)

// Kind identifies an entity kind. It is also the value of the entityType attribute.
type Kind string

// Scope describes the tenant boundary of a kind's keys.
type Scope int

const (
	// ScopeTenant kinds carry organizationId in every partition key.
	ScopeTenant Scope = iota

	// ScopeGlobal kinds are not keyed by tenant.
	ScopeGlobal

	// ScopeRoot is the organization itself.
	ScopeRoot
)

func (s Scope) String() string {
	switch s {
	case ScopeTenant:
		return "tenant"
	case ScopeGlobal:
		return "global"
	case ScopeRoot:
		return "root"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Definition describes how one kind is laid out in the table.
type Definition struct {
	Kind  Kind
	Tag   string
	Scope Scope

	// IDAttr is the generated identifier attribute, assigned on create when empty.
	IDAttr string

	// Primary is the base table key. Its Name is the pattern used to list by partition.
	Primary Access

	// Indexes holds zero to two secondary access patterns, one per index slot.
	Indexes []Access

	// Defaults are applied on create to attributes the caller left absent.
	Defaults map[string]string
}

// Patterns returns the primary access pattern followed by the index patterns.
func (d *Definition) Patterns() []Access {
	out := make([]Access, 0, 1+len(d.Indexes))
	out = append(out, d.Primary)
	return append(out, d.Indexes...)
}

// Pattern returns the access pattern with the given name.
func (d *Definition) Pattern(name string) (Access, error) {
	for _, a := range d.Patterns() {
		if a.Name == name {
			return a, nil
		}
	}
	return Access{}, fmt.Errorf("%w: %s.%s", ErrUnknownPattern, d.Kind, name)
}

// KeyAttributeNames returns the attributes forming the primary key, in order.
func (d *Definition) KeyAttributeNames() []string {
	return d.Primary.Attrs()
}

// IndexedAttrs returns the attributes that feed secondary index keys.
func (d *Definition) IndexedAttrs() []string {
	seen := map[string]bool{}
	var out []string
	for _, a := range d.Indexes {
		for _, name := range a.Attrs() {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// PrimaryKey renders the primary key from positional values.
func (d *Definition) PrimaryKey(values ...string) (Key, error) {
	if len(values) != len(d.KeyAttributeNames()) {
		return Key{}, fmt.Errorf("%w: %s key expects %d values, got %d",
			ErrInvalidKeyValue, d.Kind, len(d.KeyAttributeNames()), len(values))
	}
	pk, sk, err := d.Primary.Bind(values...)
	if err != nil {
		return Key{}, fmt.Errorf("%s: %w", d.Kind, err)
	}
	return Key{PK: pk, SK: sk.Value}, nil
}

// KeyOf renders the primary key from attribute values.
func (d *Definition) KeyOf(attrs map[string]string) (Key, error) {
	values := make([]string, 0, len(d.KeyAttributeNames()))
	for _, name := range d.KeyAttributeNames() {
		v, ok := attrs[name]
		if !ok || v == "" {
			return Key{}, fmt.Errorf("%w: %s.%s", ErrMissingKeyAttribute, d.Kind, name)
		}
		values = append(values, v)
	}
	return d.PrimaryKey(values...)
}

// KeyAttrs renders every key attribute for a record: pk, sk, each index key pair the
// record has all attributes for, and the entityType discriminator.
func (d *Definition) KeyAttrs(attrs map[string]string) (map[string]string, error) {
	key, err := d.KeyOf(attrs)
	if err != nil {
		return nil, err
	}

	out := map[string]string{
		AttrPK:         key.PK,
		AttrSK:         key.SK,
		AttrEntityType: string(d.Kind),
	}
	for _, a := range d.Indexes {
		pk, ok, err := a.Partition.Render(attrs)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", d.Kind, a.Name, err)
		}
		if !ok {
			continue
		}
		sk, ok, err := a.Sort.Render(attrs)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", d.Kind, a.Name, err)
		}
		if !ok {
			continue
		}
		out[a.Slot.PartitionAttr()] = pk
		out[a.Slot.SortAttr()] = sk
	}
	return out, nil
}

func (d *Definition) validate() error {
	if d.Kind == "" || d.Tag == "" {
		return fmt.Errorf("%w: kind and tag are required", ErrInvalidDefinition)
	}
	if strings.Contains(d.Tag, Separator) {
		return fmt.Errorf("%w: %s tag contains separator", ErrInvalidDefinition, d.Kind)
	}
	if d.Primary.Slot != SlotPrimary {
		return fmt.Errorf("%w: %s primary access must use the primary slot", ErrInvalidDefinition, d.Kind)
	}
	if len(d.Indexes) > 2 {
		return fmt.Errorf("%w: %s has %d index patterns", ErrInvalidDefinition, d.Kind, len(d.Indexes))
	}

	keyAttrs := map[string]bool{}
	for _, name := range d.KeyAttributeNames() {
		if keyAttrs[name] {
			return fmt.Errorf("%w: %s repeats key attribute %s", ErrInvalidDefinition, d.Kind, name)
		}
		keyAttrs[name] = true
	}
	if !keyAttrs[d.IDAttr] {
		return fmt.Errorf("%w: %s id attribute %q is not part of the primary key", ErrInvalidDefinition, d.Kind, d.IDAttr)
	}

	slots := map[Slot]bool{}
	names := map[string]bool{}
	for _, a := range d.Patterns() {
		if a.Name == "" {
			return fmt.Errorf("%w: %s has an unnamed access pattern", ErrInvalidDefinition, d.Kind)
		}
		if names[a.Name] {
			return fmt.Errorf("%w: %s repeats pattern %s", ErrInvalidDefinition, d.Kind, a.Name)
		}
		names[a.Name] = true

		if slots[a.Slot] {
			return fmt.Errorf("%w: %s uses slot %s twice", ErrInvalidDefinition, d.Kind, a.Slot)
		}
		slots[a.Slot] = true

		if a.Sort.Prefix != d.Tag {
			return fmt.Errorf("%w: %s.%s sort prefix %q must be the kind tag %q",
				ErrInvalidDefinition, d.Kind, a.Name, a.Sort.Prefix, d.Tag)
		}
		if a.Partition.Prefix == "" {
			return fmt.Errorf("%w: %s.%s has no partition prefix", ErrInvalidDefinition, d.Kind, a.Name)
		}
		if d.Scope == ScopeTenant && !contains(a.Partition.Attrs, AttrOrganizationID) {
			return fmt.Errorf("%w: %s.%s partition is not tenant scoped", ErrInvalidDefinition, d.Kind, a.Name)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
