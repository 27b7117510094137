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

package execution_test

import (
	"testing"

	"github.com/nucco/jems/curated"
	"github.com/nucco/jems/hardware/cpu/execution"
	"github.com/nucco/jems/hardware/cpu/instructions"
	"github.com/nucco/jems/test"
)

func TestString(t *testing.T) {
	r := execution.Result{
		Address:         0x0400,
		Defn:            instructions.GetDefinition(0xbd),
		Opcode:          0xbd,
		ByteCount:       3,
		Cycles:          5,
		InstructionData: uint16(0x0200),
		PageFault:       true,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0x0400 LDA $0200,X [5] page-fault")

	r = execution.Result{
		Address:         0x0200,
		Defn:            instructions.GetDefinition(0xa9),
		Opcode:          0xa9,
		ByteCount:       2,
		Cycles:          2,
		InstructionData: uint8(0xa1),
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0x0200 LDA #$a1 [2]")

	r = execution.Result{
		Address:         0x0300,
		Defn:            instructions.GetDefinition(0x6c),
		Opcode:          0x6c,
		ByteCount:       3,
		Cycles:          5,
		InstructionData: uint16(0x30ff),
		CPUBug:          execution.JmpIndirectAddressingBug,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0x0300 JMP ($30ff) [5] * indirect addressing bug *")

	r = execution.Result{
		Address:   0x0300,
		Defn:      instructions.GetDefinition(0x0a),
		Opcode:    0x0a,
		ByteCount: 1,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectEquality(t, r.String(), "0x0300 ASL A [2]")

	r = execution.Result{
		Address:   0x1234,
		Opcode:    0x02,
		ByteCount: 1,
		Illegal:   true,
		Final:     true,
	}
	test.ExpectEquality(t, r.String(), "0x1234 ??? (0x02) illegal")

	r.Reset()
	test.ExpectEquality(t, r.Final, false)
	test.ExpectEquality(t, r.Illegal, false)
	test.ExpectEquality(t, r.Address, 0)
}

func TestValidity(t *testing.T) {
	var r execution.Result

	// not finalised
	err := r.IsValid()
	test.ExpectEquality(t, curated.Is(err, execution.NotFinalised), true)

	// illegal opcodes
	r = execution.Result{Opcode: 0x02, ByteCount: 1, Illegal: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 2
	test.ExpectEquality(t, curated.Is(r.IsValid(), execution.IllegalResult), true)

	// LDA abs,X is page sensitive
	r = execution.Result{Defn: instructions.GetDefinition(0xbd), ByteCount: 3, Cycles: 4, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectEquality(t, curated.Is(r.IsValid(), execution.WrongCycleCount), true)
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())
	r.ByteCount = 2
	test.ExpectEquality(t, curated.Is(r.IsValid(), execution.WrongByteCount), true)

	// STA abs,X is not page sensitive
	r = execution.Result{Defn: instructions.GetDefinition(0x9d), ByteCount: 3, Cycles: 5, PageFault: true, Final: true}
	test.ExpectEquality(t, curated.Is(r.IsValid(), execution.UnexpectedPageFault), true)
	r.PageFault = false
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = true
	test.ExpectEquality(t, curated.Is(r.IsValid(), execution.UnexpectedBranch), true)

	// BNE
	r = execution.Result{Defn: instructions.GetDefinition(0xd0), ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = true
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = false
	test.ExpectEquality(t, curated.Is(r.IsValid(), execution.UnexpectedPageFault), true)

	// cycles are not checked if a bug has been triggered
	r = execution.Result{Defn: instructions.GetDefinition(0x6c), ByteCount: 3, Cycles: 6, CPUBug: execution.JmpIndirectAddressingBug, Final: true}
	test.ExpectSuccess(t, r.IsValid())
}
