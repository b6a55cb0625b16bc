package property

import (
	"fmt"
)

// Table is the fixed, ordered set of properties an instrument declares.
type Table struct {
	entries []Descriptor
	byName  map[string]Descriptor
}

// NewTable builds a table. Names must be unique.
func NewTable(entries ...Descriptor) (*Table, error) {
	t := &Table{
		entries: make([]Descriptor, 0, len(entries)),
		byName:  make(map[string]Descriptor, len(entries)),
	}

	for _, d := range entries {
		if _, ok := t.byName[d.Name()]; ok {
			return nil, fmt.Errorf("%w: duplicate property %s", ErrInvalidSpec, d.Name())
		}
		t.byName[d.Name()] = d
		t.entries = append(t.entries, d)
	}

	return t, nil
}

// Lookup returns the property called name.
func (t *Table) Lookup(name string) (Descriptor, error) {
	d, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}

	return d, nil
}

// Entries returns the properties in declaration order.
func (t *Table) Entries() []Descriptor {
	entries := make([]Descriptor, len(t.entries))
	copy(entries, t.entries)

	return entries
}

// Len returns the number of properties.
func (t *Table) Len() int { return len(t.entries) }
