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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the dispatch table. The entry in the
// table holds the instruction definition and the function that performs the
// instruction.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the Step() function. It executes
// exactly one instruction and always completes. Let's assume mem is an
// implementation of the cpubus.Memory interface loaded with 6502 instructions
// and a reset vector:
//
//	mc := cpu.NewCPU(mem)
//	mc.LoadPCIndirect(cpubus.Reset)
//
//	numCycles := 0
//	for {
//		mc.Step()
//		numCycles += mc.LastResult.Cycles
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Opcodes that are not part of the documented instruction set are not fatal.
// They are logged with the tag "CPU" and otherwise have no effect, other than
// the program counter moving past the opcode. By default the central logger
// is used. AttachLogger() can be used to direct the log entries elsewhere.
//
// Decimal mode is not emulated. The decimal flag can be set and cleared but
// ADC and SBC always perform binary arithmetic. Interrupt lines are also not
// emulated. The only interrupt is the one caused by the BRK instruction.
package cpu
