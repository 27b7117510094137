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

// Package registers implements the four types of register found in the 6502.
// The types are the program counter, the stack pointer, the status register
// and the 8 bit register type used for A, X and Y.
//
// The 8 bit registers, implemented as the Register type, define the basic
// operations available to the 6502: load, add, subtract, logical operations
// and shifts/rotates. In addition it implements the tests required for status
// updates: is the value zero, is the number negative or is the overflow bit
// set.
//
// The program counter by comparison is 16 bits wide and defines only the load
// and add operations. The stack pointer is 8 bits wide but is always used as
// an address in page one of memory.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly, except for the zero and sign flags which are set together
// from a result value with SetZN():
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.SetZN(a.Value())
//
// In this case, the zero flag in the status register will be false and the
// sign flag will be true.
package registers
