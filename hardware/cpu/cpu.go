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

package cpu

import (
	"fmt"

	"github.com/nucco/jems/hardware/cpu/execution"
	"github.com/nucco/jems/hardware/cpu/registers"
	"github.com/nucco/jems/hardware/memory/cpubus"
	"github.com/nucco/jems/logger"
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// read-modify-write instructions operate on memory through this register
	acc8 registers.Register

	mem cpubus.Memory
	log *logger.Logger

	// LastResult is the result of the most recent call to Step()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is created in the reset state.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:  mem,
		acc8: registers.NewRegister(0, "acc8"),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy refers to
// the same memory and logger as the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AttachLogger directs log entries made by the CPU to the specified Logger. A
// nil value restores logging to the central logger.
func (mc *CPU) AttachLogger(log *logger.Logger) {
	mc.log = log
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. All 8 bit registers, including the
// status register, are set to 0xff and the PC is set to zero. Does not load
// PC with the reset vector. Use LoadPCIndirect(cpubus.Reset) when
// appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0xff, "A")
	mc.X = registers.NewRegister(0xff, "X")
	mc.Y = registers.NewRegister(0xff, "Y")
	mc.SP = registers.NewStackPointer(0xff)
	mc.Status = registers.NewStatusRegister(0xff)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The low
// byte is read first.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// Cycles returns the base number of cycles for the opcode. Returns false if
// the opcode is not part of the documented instruction set.
func Cycles(opcode uint8) (int, bool) {
	defn := dispatch[opcode].defn
	if defn == nil {
		return 0, false
	}
	return defn.Cycles, true
}

// Step executes the next instruction. The basic process is this:
//
//  1. read opcode at PC and look up the dispatch table
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Memory is accessed in that order and no other accesses are made. An illegal
// opcode is logged and has no effect other than advancing the PC.
func (mc *CPU) Step() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.fetch()
	mc.LastResult.Opcode = opcode

	e := dispatch[opcode]
	if e.defn == nil {
		mc.illegal(opcode)
		return
	}

	mc.LastResult.Defn = e.defn
	mc.LastResult.Cycles = e.defn.Cycles
	e.execute(mc, e.defn)
	mc.LastResult.Final = true
}

// illegal is the default entry in the dispatch table.
func (mc *CPU) illegal(opcode uint8) {
	mc.LastResult.Illegal = true
	mc.LastResult.Final = true

	log := mc.log
	if log == nil {
		log = logger.Central()
	}
	log.Logf(logger.Allow, "CPU", "illegal opcode (0x%02x) at (0x%04x)", opcode, mc.LastResult.Address)
}
