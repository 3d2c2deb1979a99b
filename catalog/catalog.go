// Package catalog records the declared types of a registry as a canonical
// CBOR document.
//
// A catalog pins every declared name to its identifier. Comparing catalogs
// produced by different builds shows whether identifiers stayed stable and
// whether cast tables changed shape.
package catalog

import (
	"github.com/chazu/vrc/rtti"
)

// Version is the catalog format version.
const Version uint8 = 1

// Catalog is the encoded form of a registry snapshot.
type Catalog struct {
	Version uint8   `cbor:"1,keyasint"`
	Entries []Entry `cbor:"2,keyasint"`
}

// Entry describes one declared type.
type Entry struct {
	Name  string `cbor:"1,keyasint"`
	ID    uint64 `cbor:"2,keyasint"`
	Size  uint64 `cbor:"3,keyasint"`
	Bases []Base `cbor:"4,keyasint,omitempty"`
}

// Base describes one cast-table entry.
type Base struct {
	Name string        `cbor:"1,keyasint"`
	ID   uint64        `cbor:"2,keyasint"`
	Kind rtti.BaseKind `cbor:"3,keyasint"`
}

// FromRegistry snapshots r.
func FromRegistry(r *rtti.Registry) *Catalog {
	return FromInfo(r.Snapshot())
}

// FromInfo builds a catalog from class descriptions.
func FromInfo(infos []rtti.ClassInfo) *Catalog {
	c := &Catalog{
		Version: Version,
		Entries: make([]Entry, len(infos)),
	}
	for i, info := range infos {
		e := Entry{
			Name: info.Name,
			ID:   info.ID.Uint64(),
			Size: uint64(info.Size),
		}
		for _, b := range info.Bases {
			e.Bases = append(e.Bases, Base{Name: b.Name, ID: b.ID.Uint64(), Kind: b.Kind})
		}
		c.Entries[i] = e
	}
	return c
}

// Lookup finds an entry by name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
