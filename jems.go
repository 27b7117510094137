// This file is part of jems.
//
// jems is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// jems is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with jems.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/nucco/jems/disassembly"
	"github.com/nucco/jems/hardware"
	"github.com/nucco/jems/hardware/cpu/execution"
	"github.com/nucco/jems/hardware/cpu/registers"
	"github.com/nucco/jems/loader"
	"github.com/nucco/jems/logger"
	"github.com/nucco/jems/modalflag"
	"github.com/nucco/jems/statsview"
	"github.com/nucco/jems/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)
	case "DISASM":
		err = disasm(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s\n%s\n", version.ApplicationName, v, r)
		return nil
	}

	fmt.Fprintln(output, version.String())
	return nil
}

// cpuState is the part of the CPU shown by the memviz option. The CPU type
// itself refers to the entire contents of memory.
type cpuState struct {
	PC         registers.ProgramCounter
	A          registers.Register
	X          registers.Register
	Y          registers.Register
	SP         registers.StackPointer
	Status     registers.StatusRegister
	LastResult execution.Result
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the image is loaded at the origin address unless it is a .prg file. the\n" +
		"entry point defaults to the load address. execution stops when the program\n" +
		"jumps to itself, when the instruction limit is reached or on interrupt")

	origin := md.AddAddress("origin", 0x0400, "load address of the image")
	entry := md.AddAddress("entry", 0x0000, "entry point (default: load address)")
	limit := md.AddInt("limit", 0, "maximum number of instructions (0 for no limit)")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	memvizFile := md.AddString("memviz", "", "write graphviz view of the final CPU state to file")
	echo := md.AddBool("echo", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var entrySet bool
	md.Visit(func(flag string) {
		if flag == "entry" {
			entrySet = true
		}
	})

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *echo {
		var w io.Writer = output
		if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			w = logger.NewColorizer(output, "CPU")
		}
		logger.SetEcho(w, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	m := hardware.NewMachine()

	ld := loader.NewLoader(md.GetArg(0), *origin)
	if err := ld.Load(m.RAM); err != nil {
		return err
	}

	if !entrySet {
		*entry = ld.Origin
	}
	m.SetEntry(*entry)

	var onStep func(execution.Result) error
	if *trace {
		onStep = func(r execution.Result) error {
			_, err := fmt.Fprintf(output, "%-32s %s\n", r.String(), m.CPU.String())
			return err
		}
	}

	instructions, cycles, err := m.Run(ctx, *limit, onStep)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	switch {
	case err != nil:
		fmt.Fprintf(output, "interrupted at $%04x\n", m.CPU.PC.Address())
	case m.Trapped():
		fmt.Fprintf(output, "trapped at $%04x\n", m.CPU.PC.Address())
	default:
		fmt.Fprintf(output, "instruction limit reached at $%04x\n", m.CPU.PC.Address())
	}
	fmt.Fprintf(output, "%d instructions, %d cycles\n", instructions, cycles)
	fmt.Fprintln(output, m.CPU.String())

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, &cpuState{
			PC:         m.CPU.PC,
			A:          m.CPU.A,
			X:          m.CPU.X,
			Y:          m.CPU.Y,
			SP:         m.CPU.SP,
			Status:     m.CPU.Status,
			LastResult: m.CPU.LastResult,
		})
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x0400, "load address of the image")
	entry := md.AddAddress("entry", 0x0000, "entry point for flow disassembly (default: load address)")
	linear := md.AddBool("linear", false, "decode every address rather than following the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var entrySet bool
	md.Visit(func(flag string) {
		if flag == "entry" {
			entrySet = true
		}
	})

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m := hardware.NewMachine()

	ld := loader.NewLoader(md.GetArg(0), *origin)
	if err := ld.Load(m.RAM); err != nil {
		return err
	}

	if !entrySet {
		*entry = ld.Origin
	}

	memtop := ld.Origin + uint16(len(ld.Data)-1)

	var entries []disassembly.Entry
	if *linear {
		entries = disassembly.Linear(m.RAM, ld.Origin, memtop)
	} else {
		entries = disassembly.Flow(m.RAM, ld.Origin, memtop, *entry)
	}

	for _, e := range entries {
		fmt.Fprintln(output, e)
	}

	return nil
}
