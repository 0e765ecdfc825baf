package regfile

import "testing"

func TestNewFromDescriptorsLookup(t *testing.T) {
	rf := NewFromDescriptors(
		Descriptor{Name: "r0", From: 0, To: 31},
		Descriptor{Name: "r0l", From: 0, To: 15},
	)
	d, ok := rf.Lookup("r0")
	if !ok {
		t.Fatal("Lookup(r0): not found")
	}
	if d.Size() != 32 {
		t.Errorf("r0.Size() = %d, want 32", d.Size())
	}
	if !rf.Has("r0l") {
		t.Error("Has(r0l) = false, want true")
	}
	if rf.Has("nope") {
		t.Error("Has(nope) = true, want false")
	}
}

func TestNewFromOffsetSizeTuples(t *testing.T) {
	rf := New([]struct {
		Name      string
		BitOffset int
		BitSize   int
	}{
		{Name: "eax", BitOffset: 0, BitSize: 32},
		{Name: "ax", BitOffset: 0, BitSize: 16},
	})
	d, ok := rf.Lookup("eax")
	if !ok || d.From != 0 || d.To != 31 {
		t.Errorf("Lookup(eax) = %+v, %v, want From=0 To=31", d, ok)
	}
}
