// Package typeid derives stable 64-bit type identifiers from declared type
// names.
//
// Identifiers are MurmurHash64A digests of the name, computed with the same
// seed that GNU libstdc++ uses for std::hash<std::string>. They are compared
// for equality only. Two distinct names hashing to the same identifier is
// possible in principle and is not defended against.
package typeid

import (
	"encoding/binary"
	"fmt"
)

// Hash parameters. These are FROZEN: changing either one changes every
// identifier ever computed.
const (
	Seed       uint64 = 0xc70f6907
	Multiplier uint64 = 0xc6a4a7935bd1e995
)

// ID identifies a declared type.
type ID uint64

// Of returns the identifier for a declared type name.
func Of(name string) ID {
	return ID(HashString(name))
}

// Uint64 returns the raw identifier value.
func (id ID) Uint64() uint64 {
	return uint64(id)
}

// String implements the Stringer interface.
func (id ID) String() string {
	return fmt.Sprintf("0x%016x", uint64(id))
}

// HashString hashes s without copying it.
func HashString(s string) uint64 {
	h := Seed ^ (uint64(len(s)) * Multiplier)

	n := len(s) &^ 7
	for i := 0; i < n; i += 8 {
		k := uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
			uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
		h = mixBlock(h, k)
	}
	if len(s)&7 != 0 {
		h = mixTail(h, tailString(s[n:]))
	}
	return finalize(h)
}

// Hash64 hashes an arbitrary byte slice. Hash64([]byte(s)) == HashString(s).
func Hash64(data []byte) uint64 {
	h := Seed ^ (uint64(len(data)) * Multiplier)

	n := len(data) &^ 7
	for i := 0; i < n; i += 8 {
		h = mixBlock(h, binary.LittleEndian.Uint64(data[i:]))
	}
	if len(data)&7 != 0 {
		var tail uint64
		for i := len(data) - 1; i >= n; i-- {
			tail = tail<<8 | uint64(data[i])
		}
		h = mixTail(h, tail)
	}
	return finalize(h)
}

func shiftMix(v uint64) uint64 {
	return v ^ (v >> 47)
}

func mixBlock(h, k uint64) uint64 {
	return (h ^ shiftMix(k*Multiplier)*Multiplier) * Multiplier
}

func mixTail(h, tail uint64) uint64 {
	return (h ^ tail) * Multiplier
}

func finalize(h uint64) uint64 {
	return shiftMix(shiftMix(h) * Multiplier)
}

// tailString folds the trailing (< 8) bytes little-endian.
func tailString(s string) uint64 {
	var tail uint64
	for i := len(s) - 1; i >= 0; i-- {
		tail = tail<<8 | uint64(s[i])
	}
	return tail
}
