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

// Package instructions defines the table of instruction definitions for the
// 6502. Each Definition describes an opcode: the operator, the addressing
// mode, the number of bytes and the base number of cycles.
//
// The table (table.go) is generated from generator/instructions.csv. To
// change the table, edit the CSV file and run go generate in the generator
// directory. Do not edit table.go by hand.
//
// Only the 151 documented opcodes of the NMOS 6502 are defined. The
// definition for an undocumented opcode is nil.
package instructions
