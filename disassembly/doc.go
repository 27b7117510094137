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

// Package disassembly decodes memory into 6502 instructions without executing
// them.
//
// Linear() decodes every address in a range as though it is the start of an
// instruction. Many addresses in data areas will look like instructions so
// linear disassembly is not useful for presenting an entire program. It is
// useful for inspecting an address the CPU has landed on unexpectedly.
//
// Flow() follows the program from an entry point, decoding only those
// addresses that can be reached by falling through, branching, jumping or
// calling a subroutine. It is possible for a real program to reach addresses
// that the flow disassembly does not consider. For example:
//
//	o addresses pushed onto the stack and an RTS without a JSR
//	o jumping to an address calculated at run time
//	o self-modifying code
package disassembly
