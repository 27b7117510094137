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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/nucco/jems/hardware/cpu/execution"
	"github.com/nucco/jems/hardware/cpu/instructions"
)

// Memory is the interface to the memory being disassembled. Peek() must not
// have side effects.
type Memory interface {
	Peek(address uint16) uint8
}

// EntryLevel describes the reliability of an Entry.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
//
// Decoded entries have been decoded as though the address is the start of a
// valid instruction. Blessed entries have been reached by following the flow
// of the program.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown"
}

// Entry is a single disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the decoded instruction. the Final field is always false and the
	// Cycles field is always zero
	Result execution.Result

	// the bytes of the instruction, including the opcode
	Bytes []uint8

	// the destination of a branch, JMP or JSR. only valid if HasTarget is
	// true
	Target    uint16
	HasTarget bool
}

func (e Entry) String() string {
	b := make([]string, len(e.Bytes))
	for i, v := range e.Bytes {
		b[i] = fmt.Sprintf("%02x", v)
	}

	s := fmt.Sprintf("%-8s  %s", strings.Join(b, " "), e.Result)
	if e.HasTarget && e.Result.Defn != nil && e.Result.Defn.AddressingMode == instructions.Relative {
		s = fmt.Sprintf("%s ; $%04x", s, e.Target)
	}
	return s
}

// Decode the instruction at address. Operand bytes that extend past the top
// of memory wrap around to address zero.
func Decode(mem Memory, address uint16) Entry {
	opcode := mem.Peek(address)

	e := Entry{
		Level: EntryLevelDecoded,
		Result: execution.Result{
			Address:   address,
			Opcode:    opcode,
			ByteCount: 1,
		},
		Bytes: []uint8{opcode},
	}

	defn := instructions.GetDefinition(opcode)
	if defn == nil {
		e.Result.Illegal = true
		return e
	}

	e.Result.Defn = defn
	e.Result.ByteCount = defn.Bytes

	for i := 1; i < defn.Bytes; i++ {
		e.Bytes = append(e.Bytes, mem.Peek(address+uint16(i)))
	}

	switch defn.Bytes {
	case 2:
		e.Result.InstructionData = e.Bytes[1]
	case 3:
		e.Result.InstructionData = uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1])
	}

	switch {
	case defn.AddressingMode == instructions.Relative:
		next := address + uint16(defn.Bytes)
		e.Target = next + uint16(int8(e.Bytes[1]))
		e.HasTarget = true
	case defn.AddressingMode == instructions.Absolute && (defn.Operator == instructions.JMP || defn.Operator == instructions.JSR):
		e.Target = e.Result.InstructionData.(uint16)
		e.HasTarget = true
	}

	return e
}
