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

// Bug is a description of a known bug in the 6502 that was triggered by an
// instruction.
type Bug string

// List of known bugs that the CPU reproduces.
const (
	NoBug Bug = ""

	// JMP (ind) does not carry into the high byte of the pointer. If the
	// pointer is at the end of a page, the high byte of the target is read
	// from the start of the same page.
	JmpIndirectAddressingBug Bug = "indirect addressing bug"
)
