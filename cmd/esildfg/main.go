package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/minz/esildfg/pkg/dfgraph"
	"github.com/minz/esildfg/pkg/regfile"
	"github.com/minz/esildfg/pkg/version"
	"github.com/spf13/cobra"
)

var (
	showVersion     bool
	showVersionFull bool
	regFileName     string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "esildfg",
	Short: "esildfg " + version.GetVersion(),
	Long: `esildfg - symbolic data-flow graphs for stack-based instruction semantics
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Read postfix expressions, one per line, build a data-flow graph over
a register file, and reconstruct the reduced postfix expression that
computes the current symbolic value of any register.

COMMANDS:
  build   - Evaluate expressions from stdin, report how many were
            evaluated
  filter  - Evaluate expressions from stdin, print a register's
            reduced symbolic expression
  z80-demo - Run a fixed sequence of Z80 expressions and filter the
            af and hl register pairs, demonstrating the remogatto/z80
            register file against a live CPU instance

REGISTER FILES:
  amd64 (default) - rax/eax/ax/al/ah and the sibling GP families
  z80             - af/bc/de/hl pairs with their 8-bit halves

EXAMPLES:
  echo '0x10,eax,=' | esildfg filter --reg eax
  esildfg build < program.esil
  esildfg z80-demo
  esildfg -v build < program.esil   # trace every token as it evaluates
`,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(version.GetVersion())
			return
		}
		if showVersionFull {
			fmt.Println(version.GetFullVersion())
			return
		}
		cmd.Help()
	},
}

// newLogger returns a trace logger for DFG evaluation, active only
// under --verbose; no third-party logging library is wired into this
// repository, so stdlib log is the grounded choice.
func newLogger() *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "esildfg: ", 0)
}

func resolveRegFile(name string) (*regfile.RegisterFile, error) {
	switch name {
	case "", "amd64":
		return regfile.AMD64(), nil
	case "z80":
		return regfile.Z80(), nil
	default:
		return nil, fmt.Errorf("unknown register file %q (want amd64 or z80)", name)
	}
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Evaluate expressions from stdin and report how many were evaluated",
	RunE: func(cmd *cobra.Command, args []string) error {
		regs, err := resolveRegFile(regFileName)
		if err != nil {
			return err
		}
		d := dfgraph.New(regs)
		d.SetLogger(newLogger())
		nodes := 0
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := d.Expr(line); err != nil {
				return fmt.Errorf("evaluating %q: %w", line, err)
			}
			nodes++
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		fmt.Printf("evaluated %d expression(s)\n", nodes)
		return nil
	},
}

var filterReg string

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Evaluate expressions from stdin and print a register's reduced expression",
	RunE: func(cmd *cobra.Command, args []string) error {
		if filterReg == "" {
			return fmt.Errorf("--reg is required")
		}
		regs, err := resolveRegFile(regFileName)
		if err != nil {
			return err
		}
		d := dfgraph.New(regs)
		d.SetLogger(newLogger())
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := d.Expr(line); err != nil {
				return fmt.Errorf("evaluating %q: %w", line, err)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		out, err := d.Filter(filterReg)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var z80DemoCmd = &cobra.Command{
	Use:   "z80-demo",
	Short: "Run a fixed Z80 expression sequence against a live remogatto/z80 CPU",
	RunE: func(cmd *cobra.Command, args []string) error {
		cpu := regfile.NewZ80CPU()
		regs := regfile.Z80()
		d := dfgraph.New(regs)
		d.SetLogger(newLogger())

		exprs := []string{
			"0x10,a,=",
			"1,l,+=",
			"a,h,=",
		}
		for _, e := range exprs {
			if err := d.Expr(e); err != nil {
				return fmt.Errorf("evaluating %q: %w", e, err)
			}
		}
		for _, reg := range []string{"af", "hl"} {
			out, err := d.Filter(reg)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", reg, out)
		}

		live := regfile.LiveRegisters(cpu)
		fmt.Printf("live cpu state: af=%#04x bc=%#04x de=%#04x hl=%#04x ix=%#04x iy=%#04x sp=%#04x pc=%#04x\n",
			live.AF, live.BC, live.DE, live.HL, live.IX, live.IY, live.SP, live.PC)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "print version and exit")
	rootCmd.PersistentFlags().BoolVar(&showVersionFull, "version-full", false, "print full version info and exit")
	rootCmd.PersistentFlags().StringVar(&regFileName, "regs", "amd64", "register file to evaluate against (amd64, z80)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every token as the DFG evaluates it")

	filterCmd.Flags().StringVar(&filterReg, "reg", "", "register to filter (required)")

	rootCmd.AddCommand(buildCmd, filterCmd, z80DemoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "esildfg:", err)
		os.Exit(1)
	}
}
