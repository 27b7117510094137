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

// fetch reads the byte at PC and advances the PC.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Increment()
	mc.LastResult.ByteCount++
	return v
}

// fetchOperand8 reads a one byte operand and notes it in LastResult.
func (mc *CPU) fetchOperand8() uint8 {
	v := mc.fetch()
	mc.LastResult.InstructionData = v
	return v
}

// fetchOperand16 reads a two byte operand, low byte first, and notes it in
// LastResult.
func (mc *CPU) fetchOperand16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	v := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.InstructionData = v
	return v
}

// readZeroPagePointer reads a 16 bit pointer from the zero page. The high
// byte is read from the next zero page address, wrapping around to 0x00 if
// the pointer is at 0xff.
func (mc *CPU) readZeroPagePointer(zp uint8) uint16 {
	lo := mc.mem.Read(uint16(zp))
	hi := mc.mem.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// push writes the value to the stack and moves the stack pointer down.
func (mc *CPU) push(v uint8) {
	mc.mem.Write(mc.SP.Address(), v)
	mc.SP.Decrement()
}

// pull moves the stack pointer up and reads the value from the stack.
func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(mc.SP.Address())
}

// push16 pushes the high byte first so that the value is in little-endian
// order in memory.
func (mc *CPU) push16(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

// pull16 pulls the low byte first.
func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}
