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

package execution

import (
	"fmt"
	"strings"

	"github.com/nucco/jems/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil if the opcode is illegal
	Defn *instructions.Definition

	// the opcode byte that was fetched. the same as Defn.OpCode for legal
	// instructions
	Opcode uint8

	// the number of bytes read during instruction decode
	ByteCount int

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and branches, this value
	// may be different
	Cycles int

	// the operand of the instruction as read from memory. uint8 for one byte
	// operands and uint16 for two byte operands. nil if the instruction has
	// no operand
	InstructionData any

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether the branch condition was met
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// the opcode was not part of the documented instruction set
	Illegal bool

	// whether this data has been finalised. the values of the other fields
	// are undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns the result as a single line of trace output. For example:
//
//	0x0400 LDA $0200,X [5] page-fault
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04x ", r.Address))

	if r.Illegal || r.Defn == nil {
		s.WriteString(fmt.Sprintf("??? (0x%02x) illegal", r.Opcode))
		return s.String()
	}

	s.WriteString(r.Defn.Mnemonic())

	if operand := r.operand(); operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	}
	if r.BranchSuccess {
		s.WriteString(" branched")
	}
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}

// operand decorates the instruction data with addressing mode indicators.
func (r Result) operand() string {
	var operand string

	switch d := r.InstructionData.(type) {
	case uint8:
		operand = fmt.Sprintf("$%02x", d)
	case uint16:
		operand = fmt.Sprintf("$%04x", d)
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s,Y", operand)
	}

	return operand
}
