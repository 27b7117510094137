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

package disassembly_test

import (
	"testing"

	"github.com/nucco/jems/disassembly"
	"github.com/nucco/jems/hardware/memory"
	"github.com/nucco/jems/test"
)

var program = []uint8{
	0xa2, 0x05,       // LDX #$05
	0x20, 0x0a, 0x04, // loop JSR sub
	0xca,             // DEX
	0xd0, 0xfa,       // BNE loop
	0x00,             // BRK
	0xff,             // data
	0xe8,             // sub INX
	0x60,             // RTS
}

func newRAM(t *testing.T) *memory.RAM {
	t.Helper()
	ram := memory.NewRAM()
	test.DemandSuccess(t, ram.Load(0x0400, program))
	return ram
}

func TestDecode(t *testing.T) {
	ram := newRAM(t)

	e := disassembly.Decode(ram, 0x0400)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.String(), "a2 05     0x0400 LDX #$05")
	test.ExpectEquality(t, e.HasTarget, false)

	e = disassembly.Decode(ram, 0x0402)
	test.ExpectEquality(t, e.String(), "20 0a 04  0x0402 JSR $040a")
	test.ExpectEquality(t, e.HasTarget, true)
	test.ExpectEquality(t, e.Target, uint16(0x040a))

	e = disassembly.Decode(ram, 0x0406)
	test.ExpectEquality(t, e.String(), "d0 fa     0x0406 BNE $fa ; $0402")
	test.ExpectEquality(t, e.Target, uint16(0x0402))

	e = disassembly.Decode(ram, 0x0409)
	test.ExpectEquality(t, e.Result.Illegal, true)
	test.ExpectEquality(t, e.String(), "ff        0x0409 ??? (0xff) illegal")

	// decoding has no side effects on memory and does not execute
	test.ExpectEquality(t, ram.Read(0x0400), 0xa2)

	// operand bytes wrap around the top of memory
	ram.Poke(0xffff, 0xad)
	ram.Poke(0x0000, 0x34)
	ram.Poke(0x0001, 0x12)
	e = disassembly.Decode(ram, 0xffff)
	test.ExpectEquality(t, e.Result.InstructionData, any(uint16(0x1234)))
}

func TestLinear(t *testing.T) {
	ram := newRAM(t)

	entries := disassembly.Linear(ram, 0x0400, 0x040b)
	test.DemandEquality(t, len(entries), 12)
	for i, e := range entries {
		test.ExpectEquality(t, e.Result.Address, uint16(0x0400+i))
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	}
	test.ExpectEquality(t, entries[9].Result.Illegal, true)

	test.ExpectEquality(t, len(disassembly.Linear(ram, 0x0401, 0x0400)), 0)
	test.ExpectEquality(t, len(disassembly.Linear(ram, 0xfff0, 0xffff)), 16)
}

func TestFlow(t *testing.T) {
	ram := newRAM(t)

	entries := disassembly.Flow(ram, 0x0400, 0x040b, 0x0400)
	expected := []uint16{0x0400, 0x0402, 0x0405, 0x0406, 0x0408, 0x040a, 0x040b}
	test.DemandEquality(t, len(entries), len(expected))
	for i, e := range entries {
		test.ExpectEquality(t, e.Result.Address, expected[i], i)
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed, i)
	}
}

func TestFlowIndirectJump(t *testing.T) {
	ram := memory.NewRAM()

	// JMP ($0410)
	test.DemandSuccess(t, ram.Load(0x0400, []uint8{0x6c, 0x10, 0x04}))
	test.DemandSuccess(t, ram.Load(0x0410, []uint8{0x20, 0x04}))
	test.DemandSuccess(t, ram.Load(0x0420, []uint8{0x60}))

	entries := disassembly.Flow(ram, 0x0400, 0x04ff, 0x0400)
	test.DemandEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[0].Result.Address, uint16(0x0400))
	test.ExpectEquality(t, entries[1].Result.Address, uint16(0x0420))

	// entry point outside of the range
	test.ExpectEquality(t, len(disassembly.Flow(ram, 0x0400, 0x04ff, 0x0500)), 0)
}
