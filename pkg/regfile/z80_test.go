package regfile

import "testing"

func TestZ80RegisterLayout(t *testing.T) {
	rf := Z80()

	af, ok := rf.Lookup("af")
	if !ok {
		t.Fatal("af not found")
	}
	a, _ := rf.Lookup("a")
	f, _ := rf.Lookup("f")
	if a.From != af.From+8 || a.To != af.To {
		t.Errorf("a should be af's high byte: a=%+v af=%+v", a, af)
	}
	if f.From != af.From || f.To != af.From+7 {
		t.Errorf("f should be af's low byte: f=%+v af=%+v", f, af)
	}

	for _, name := range []string{"ix", "iy", "sp", "pc"} {
		if !rf.Has(name) {
			t.Errorf("missing register %q", name)
		}
	}
	if rf.Has("ixh") || rf.Has("ixl") {
		t.Error("ix should not have 8-bit halves in this register file")
	}
}

func TestLiveRegistersReflectsCPUState(t *testing.T) {
	cpu := NewZ80CPU()
	cpu.A, cpu.F = 0x12, 0x34
	cpu.SetPC(0xBEEF)
	cpu.SetSP(0xFACE)

	got := LiveRegisters(cpu)
	if got.AF != 0x1234 {
		t.Errorf("LiveRegisters.AF = %#x, want 0x1234", got.AF)
	}
	if got.PC != 0xBEEF {
		t.Errorf("LiveRegisters.PC = %#x, want 0xBEEF", got.PC)
	}
	if got.SP != 0xFACE {
		t.Errorf("LiveRegisters.SP = %#x, want 0xFACE", got.SP)
	}
}
