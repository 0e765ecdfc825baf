// Package regfile describes machine register files as closed bit
// ranges over a shared register file, so that overlapping aliases
// (e.g. a 64-bit register and its 32/16/8-bit sub-registers) can be
// reasoned about uniformly.
package regfile

import "fmt"

// Descriptor is a single register alias: a name and the closed bit
// range [From, To] it occupies in the register file.
type Descriptor struct {
	Name string
	From int
	To   int
}

// Size returns the width of the descriptor in bits.
func (d Descriptor) Size() int {
	return d.To - d.From + 1
}

// RegisterFile is an immutable lookup table from register alias name
// to its bit-range descriptor.
type RegisterFile struct {
	byName map[string]Descriptor
}

// New builds a RegisterFile from a flat list of (name, bit_offset,
// bit_size) tuples, folding each to a closed [from, to] range.
func New(entries []struct {
	Name      string
	BitOffset int
	BitSize   int
}) *RegisterFile {
	rf := &RegisterFile{byName: make(map[string]Descriptor, len(entries))}
	for _, e := range entries {
		rf.byName[e.Name] = Descriptor{
			Name: e.Name,
			From: e.BitOffset,
			To:   e.BitOffset + e.BitSize - 1,
		}
	}
	return rf
}

// NewFromDescriptors builds a RegisterFile directly from Descriptors,
// for callers that already have closed bit ranges.
func NewFromDescriptors(descs ...Descriptor) *RegisterFile {
	rf := &RegisterFile{byName: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		rf.byName[d.Name] = d
	}
	return rf
}

// Lookup returns the descriptor for a register alias, and whether it
// is known to this register file.
func (rf *RegisterFile) Lookup(name string) (Descriptor, bool) {
	d, ok := rf.byName[name]
	return d, ok
}

// Has reports whether name is a known register alias.
func (rf *RegisterFile) Has(name string) bool {
	_, ok := rf.byName[name]
	return ok
}

// String renders the register file for debugging.
func (rf *RegisterFile) String() string {
	return fmt.Sprintf("RegisterFile(%d registers)", len(rf.byName))
}
