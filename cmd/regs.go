package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"remex/pkg/tracer"
)

var regsCmd = &cobra.Command{
	Use:   "regs <pid>",
	Short: "Seize a process, print its register file, and detach",
	Args:  cobra.ExactArgs(1),
	Run:   runRegs,
}

func init() {
	RootCmd.AddCommand(regsCmd)
}

func runRegs(cmd *cobra.Command, args []string) {
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid pid %q: %v\n", args[0], err)
		os.Exit(1)
	}

	tracer.LockOSThread()
	t := tracer.New(pid)

	if err := t.Attach(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := t.Interrupt(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := t.WaitForTrap(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	regs, err := t.GetRegisters()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = t.Detach()
		os.Exit(2)
	}

	fmt.Printf("ip=%#x sp=%#x bp=%#x ax=%#x orig_ax=%#x\n", regs.IP, regs.SP, regs.BP, regs.AX, regs.OrigAX)
	fmt.Printf("di=%#x si=%#x dx=%#x cx=%#x bx=%#x\n", regs.DI, regs.SI, regs.DX, regs.CX, regs.BX)
	fmt.Printf("r8=%#x r9=%#x r10=%#x r11=%#x r12=%#x r13=%#x r14=%#x r15=%#x\n",
		regs.R8, regs.R9, regs.R10, regs.R11, regs.R12, regs.R13, regs.R14, regs.R15)
	fmt.Printf("flags=%#x cs=%#x ss=%#x ds=%#x es=%#x fs=%#x gs=%#x\n",
		regs.Flags, regs.CS, regs.SS, regs.DS, regs.ES, regs.FS, regs.GS)

	if err := t.Detach(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
