package catalog

import (
	"fmt"
	"sort"
)

// ChangeKind classifies a catalog difference.
type ChangeKind uint8

const (
	Added ChangeKind = iota + 1
	Removed
	IDChanged
	BasesChanged
	SizeChanged
)

// String implements the Stringer interface.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case IDChanged:
		return "id changed"
	case BasesChanged:
		return "bases changed"
	case SizeChanged:
		return "size changed"
	default:
		return fmt.Sprintf("ChangeKind(%d)", uint8(k))
	}
}

// Change is one difference between two catalogs.
type Change struct {
	Name string
	Kind ChangeKind
}

// String implements the Stringer interface.
func (c Change) String() string {
	return c.Name + ": " + c.Kind.String()
}

// Diff compares prev against next, sorted by name then kind.
// An IDChanged entry means persisted identifiers no longer match.
func Diff(prev, next *Catalog) []Change {
	before := index(prev)
	after := index(next)

	var changes []Change
	for name, o := range before {
		n, ok := after[name]
		if !ok {
			changes = append(changes, Change{Name: name, Kind: Removed})
			continue
		}
		if o.ID != n.ID {
			changes = append(changes, Change{Name: name, Kind: IDChanged})
		}
		if !sameBases(o.Bases, n.Bases) {
			changes = append(changes, Change{Name: name, Kind: BasesChanged})
		}
		if o.Size != n.Size {
			changes = append(changes, Change{Name: name, Kind: SizeChanged})
		}
	}
	for name := range after {
		if _, ok := before[name]; !ok {
			changes = append(changes, Change{Name: name, Kind: Added})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Name != changes[j].Name {
			return changes[i].Name < changes[j].Name
		}
		return changes[i].Kind < changes[j].Kind
	})
	return changes
}

// Stable reports whether every identifier in prev survives unchanged in next.
func Stable(prev, next *Catalog) bool {
	for _, c := range Diff(prev, next) {
		if c.Kind == IDChanged || c.Kind == Removed {
			return false
		}
	}
	return true
}

func index(c *Catalog) map[string]Entry {
	m := make(map[string]Entry)
	if c == nil {
		return m
	}
	for _, e := range c.Entries {
		m[e.Name] = e
	}
	return m
}

func sameBases(a, b []Base) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
