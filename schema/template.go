package schema

import (
	"fmt"
	"strings"
)

// Template composes a key value from a fixed prefix and an ordered list of attributes.
type Template struct {
	Prefix string
	Attrs  []string
}

// Render renders the template from attribute values. It reports false when any
// attribute is absent, which for index templates means the record is not indexed.
func (t Template) Render(attrs map[string]string) (string, bool, error) {
	values := make([]string, 0, len(t.Attrs))
	for _, name := range t.Attrs {
		v, ok := attrs[name]
		if !ok || v == "" {
			return "", false, nil
		}
		values = append(values, v)
	}
	s, err := t.render(values)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

func (t Template) render(values []string) (string, error) {
	var b strings.Builder
	b.WriteString(t.Prefix)
	for i, v := range values {
		if err := checkValue(v); err != nil {
			return "", fmt.Errorf("%s: %w", t.Attrs[i], err)
		}
		b.WriteString(Separator)
		b.WriteString(v)
	}
	return b.String(), nil
}

// prefix renders the template with a leading subset of its attributes bound. The result
// ends in the separator so it never matches a longer value in the same position.
func (t Template) prefix(values []string) (string, error) {
	s, err := t.render(values)
	if err != nil {
		return "", err
	}
	return s + Separator, nil
}

func checkValue(v string) error {
	if v == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKeyValue)
	}
	if strings.Contains(v, Separator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidKeyValue, v, Separator)
	}
	return nil
}

// SortCondition restricts a query to one kind within a partition.
type SortCondition struct {
	// Value is the full sort key when Exact, otherwise a begins_with prefix.
	Value string
	Exact bool
}

// Access is one named way to reach records of a kind.
type Access struct {
	Name      string
	Slot      Slot
	Partition Template
	Sort      Template
}

// Attrs returns the partition attributes followed by the sort attributes.
func (a Access) Attrs() []string {
	out := make([]string, 0, len(a.Partition.Attrs)+len(a.Sort.Attrs))
	out = append(out, a.Partition.Attrs...)
	return append(out, a.Sort.Attrs...)
}

// Bind binds positional values to the access pattern. All partition attributes must be
// bound; any remaining values bind a leading subset of the sort attributes.
func (a Access) Bind(values ...string) (string, SortCondition, error) {
	np := len(a.Partition.Attrs)
	if len(values) < np || len(values) > np+len(a.Sort.Attrs) {
		return "", SortCondition{}, fmt.Errorf("%w: %s expects %d to %d values, got %d",
			ErrInvalidKeyValue, a.Name, np, np+len(a.Sort.Attrs), len(values))
	}

	partition, err := a.Partition.render(values[:np])
	if err != nil {
		return "", SortCondition{}, err
	}

	bound := values[np:]
	if len(bound) == len(a.Sort.Attrs) {
		sk, err := a.Sort.render(bound)
		if err != nil {
			return "", SortCondition{}, err
		}
		return partition, SortCondition{Value: sk, Exact: true}, nil
	}

	sk, err := a.Sort.prefix(bound)
	if err != nil {
		return "", SortCondition{}, err
	}
	return partition, SortCondition{Value: sk}, nil
}
