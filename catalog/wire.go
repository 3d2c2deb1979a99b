package catalog

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrVersionMismatch is returned when decoding a catalog of another format version.
var ErrVersionMismatch = errors.New("catalog version mismatch")

// cborEncMode uses canonical mode so equal catalogs encode to equal bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("catalog: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Marshal serializes a Catalog to CBOR bytes.
func Marshal(c *Catalog) ([]byte, error) {
	return cborEncMode.Marshal(c)
}

// Unmarshal deserializes a Catalog from CBOR bytes.
func Unmarshal(data []byte) (*Catalog, error) {
	var c Catalog
	if err := cbor.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}
	if c.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, c.Version, Version)
	}
	return &c, nil
}
