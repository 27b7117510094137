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
	"github.com/nucco/jems/hardware/cpu/execution"
	"github.com/nucco/jems/hardware/cpu/instructions"
	"github.com/nucco/jems/hardware/cpu/registers"
)

// effectiveAddress reads the operand bytes of the instruction and returns the
// address that the instruction will read from or write to. Any pointer bytes
// required by the addressing mode are read from memory, low byte first.
//
// Must not be called for the Implied, Accumulator, Immediate or Relative
// addressing modes.
func (mc *CPU) effectiveAddress(defn *instructions.Definition) uint16 {
	switch defn.AddressingMode {
	case instructions.ZeroPage:
		return uint16(mc.fetchOperand8())

	case instructions.ZeroPageIndexedX:
		// 8 bit addition. the address never leaves the zero page
		return uint16(mc.fetchOperand8() + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		return uint16(mc.fetchOperand8() + mc.Y.Value())

	case instructions.Absolute:
		return mc.fetchOperand16()

	case instructions.AbsoluteIndexedX:
		return mc.indexed(defn, mc.fetchOperand16(), mc.X.Address())

	case instructions.AbsoluteIndexedY:
		return mc.indexed(defn, mc.fetchOperand16(), mc.Y.Address())

	case instructions.IndexedIndirect:
		return mc.readZeroPagePointer(mc.fetchOperand8() + mc.X.Value())

	case instructions.IndirectIndexed:
		base := mc.readZeroPagePointer(mc.fetchOperand8())
		return mc.indexed(defn, base, mc.Y.Address())

	case instructions.Indirect:
		indirectAddress := mc.fetchOperand16()
		lo := mc.mem.Read(indirectAddress)

		// the high byte of the pointer is not incremented when the low byte
		// is at the end of a page. the high byte of the target address is
		// read from the start of the same page
		hiAddress := indirectAddress + 1
		if indirectAddress&0x00ff == 0x00ff {
			hiAddress = indirectAddress & 0xff00
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		hi := mc.mem.Read(hiAddress)

		return uint16(hi)<<8 | uint16(lo)
	}

	panic("cpu: effective address requested for " + defn.AddressingMode.String())
}

// indexed adds the index to the base address. 16 bit addition that wraps
// around at the top of memory. Page sensitive instructions take an extra
// cycle if the high byte of the address changes.
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint16) uint16 {
	address := base + index
	if defn.PageSensitive && address&0xff00 != base&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
	return address
}

// readOperand returns the value the instruction operates on. For immediate
// mode this is the operand byte itself. For all other modes it is read from
// the effective address.
func (mc *CPU) readOperand(defn *instructions.Definition) uint8 {
	if defn.AddressingMode == instructions.Immediate {
		return mc.fetchOperand8()
	}
	return mc.mem.Read(mc.effectiveAddress(defn))
}

// writeOperand writes the value to the effective address.
func (mc *CPU) writeOperand(defn *instructions.Definition, v uint8) {
	mc.mem.Write(mc.effectiveAddress(defn), v)
}

// modifyOperand performs a read-modify-write operation. In accumulator mode
// the A register is modified directly. Otherwise the value at the effective
// address is read once, modified and written once. The zero and sign flags
// are set from the result in both cases.
func (mc *CPU) modifyOperand(defn *instructions.Definition, modify func(r *registers.Register)) {
	if defn.AddressingMode == instructions.Accumulator {
		modify(&mc.A)
		mc.Status.SetZN(mc.A.Value())
		return
	}

	address := mc.effectiveAddress(defn)
	mc.acc8.Load(mc.mem.Read(address))
	modify(&mc.acc8)
	mc.mem.Write(address, mc.acc8.Value())
	mc.Status.SetZN(mc.acc8.Value())
}

// branch reads the relative operand and moves the PC if the condition is
// true. A taken branch takes an extra cycle and another if the destination is
// on a different page.
func (mc *CPU) branch(condition bool) {
	offset := mc.fetchOperand8()
	if !condition {
		return
	}

	mc.LastResult.BranchSuccess = true
	mc.LastResult.Cycles++

	// the offset is a signed 8 bit value. conversion to uint16 via int8
	// propagates the sign bit
	from := mc.PC.Address()
	to := from + uint16(int8(offset))

	if from&0xff00 != to&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.PC.Load(to)
}
