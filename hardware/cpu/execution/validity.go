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
	"github.com/nucco/jems/curated"
)

// Sentinal error patterns returned by IsValid().
const (
	NotFinalised        = "cpu: execution not finalised"
	NoDefinition        = "cpu: legal instruction without definition"
	IllegalResult       = "cpu: illegal opcode result is inconsistent (%d bytes, %d cycles)"
	UnexpectedPageFault = "cpu: unexpected page fault"
	UnexpectedBranch    = "cpu: branch success recorded for non-branch instruction"
	WrongByteCount      = "cpu: unexpected number of bytes read during decode (%d instead of %d)"
	WrongCycleCount     = "cpu: number of cycles wrong for opcode 0x%02x [%s] (%d instead of %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinalised)
	}

	// an illegal opcode is a single byte read with no other effect
	if r.Illegal {
		if r.ByteCount != 1 || r.Cycles != 0 {
			return curated.Errorf(IllegalResult, r.ByteCount, r.Cycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf(NoDefinition)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(UnexpectedPageFault)
	}

	if !r.Defn.IsBranch() && r.BranchSuccess {
		return curated.Errorf(UnexpectedBranch)
	}

	// a branch can only cross a page if it is taken
	if r.Defn.IsBranch() && r.PageFault && !r.BranchSuccess {
		return curated.Errorf(UnexpectedPageFault)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongByteCount, r.ByteCount, r.Defn.Bytes)
	}

	// if a bug has been triggered, don't perform the number of cycles check
	if r.CPUBug != NoBug {
		return nil
	}

	expected := r.Defn.Cycles
	if r.BranchSuccess {
		expected++
	}
	if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf(WrongCycleCount, r.Defn.OpCode, r.Defn.Mnemonic(), r.Cycles, expected)
	}

	return nil
}
