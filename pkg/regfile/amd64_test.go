package regfile

import "testing"

func TestAMD64Aliasing(t *testing.T) {
	rf := AMD64()

	rax, ok := rf.Lookup("rax")
	if !ok {
		t.Fatal("rax not found")
	}
	eax, _ := rf.Lookup("eax")
	ax, _ := rf.Lookup("ax")
	al, _ := rf.Lookup("al")
	ah, _ := rf.Lookup("ah")

	if rax.From != eax.From || eax.From != ax.From || ax.From != al.From {
		t.Errorf("rax/eax/ax/al must share a base offset: %+v %+v %+v %+v", rax, eax, ax, al)
	}
	if rax.Size() != 64 || eax.Size() != 32 || ax.Size() != 16 || al.Size() != 8 || ah.Size() != 8 {
		t.Errorf("unexpected sizes: rax=%d eax=%d ax=%d al=%d ah=%d",
			rax.Size(), eax.Size(), ax.Size(), al.Size(), ah.Size())
	}
	if ah.From != al.To+1 {
		t.Errorf("ah should immediately follow al: ah=%+v al=%+v", ah, al)
	}
}

func TestAMD64NoHighByteForRsiFamily(t *testing.T) {
	rf := AMD64()
	if rf.Has("sih") {
		t.Error("rsi family should not define a high-byte alias")
	}
	if !rf.Has("sil") {
		t.Error("rsi family should define a low-byte alias sil")
	}
}

func TestAMD64FamiliesDoNotOverlap(t *testing.T) {
	rf := AMD64()
	rax, _ := rf.Lookup("rax")
	rbx, _ := rf.Lookup("rbx")
	if rax.To >= rbx.From {
		t.Errorf("rax and rbx ranges overlap: rax=%+v rbx=%+v", rax, rbx)
	}
}
