package main

import (
	"io"
	"os"
	"testing"
)

// withStdin temporarily replaces os.Stdin with a pipe fed by content,
// since the build/filter commands read via os.Stdin directly rather
// than cmd.InOrStdin().
func withStdin(t *testing.T, content string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = orig })

	go func() {
		io.WriteString(w, content)
		w.Close()
	}()
}

func TestFilterCommand(t *testing.T) {
	withStdin(t, "0x10,eax,=\n")
	rootCmd.SetArgs([]string{"filter", "--reg", "eax"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestBuildCommand(t *testing.T) {
	withStdin(t, "1,2,+,eax,=\n1,rax,+=\n")
	rootCmd.SetArgs([]string{"build"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestZ80DemoCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"z80-demo"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestFilterRequiresRegFlag(t *testing.T) {
	withStdin(t, "")
	filterReg = "" // flags persist across Execute calls within a process
	rootCmd.SetArgs([]string{"filter"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("filter without --reg: want an error")
	}
}

func TestUnknownRegisterFile(t *testing.T) {
	withStdin(t, "")
	rootCmd.SetArgs([]string{"build", "--regs", "mips"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("build with an unknown register file: want an error")
	}
}
