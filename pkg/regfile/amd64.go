package regfile

// AMD64 returns a register file modelling the classic x86-64
// general-purpose register aliasing: a 64-bit register, its 32-bit
// and 16-bit aliases, and an 8-bit low half for every general-purpose
// register plus an 8-bit high half for the four legacy registers that
// have one (rax/rbx/rcx/rdx), giving families like rax/eax/ax/al/ah.
func AMD64() *RegisterFile {
	type family struct {
		reg64, reg32, reg16, low8, high8 string
	}
	families := []family{
		{"rax", "eax", "ax", "al", "ah"},
		{"rbx", "ebx", "bx", "bl", "bh"},
		{"rcx", "ecx", "cx", "cl", "ch"},
		{"rdx", "edx", "dx", "dl", "dh"},
		{"rsi", "esi", "si", "sil", ""},
		{"rdi", "edi", "di", "dil", ""},
		{"rbp", "ebp", "bp", "bpl", ""},
		{"rsp", "esp", "sp", "spl", ""},
	}

	var descs []Descriptor
	for i, f := range families {
		base := i * 64
		descs = append(descs,
			Descriptor{Name: f.reg64, From: base, To: base + 63},
			Descriptor{Name: f.reg32, From: base, To: base + 31},
			Descriptor{Name: f.reg16, From: base, To: base + 15},
			Descriptor{Name: f.low8, From: base, To: base + 7},
		)
		if f.high8 != "" {
			descs = append(descs, Descriptor{Name: f.high8, From: base + 8, To: base + 15})
		}
	}
	return NewFromDescriptors(descs...)
}
