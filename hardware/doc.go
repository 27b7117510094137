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

// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required to run a 6502 program without any
// kind of user interface.
//
// The Machine type is the root of the emulation. It joins a CPU to a flat 64K
// RAM. From here, the emulation can either be run continuously, with an
// optional callback after every instruction, or it can be stepped one
// instruction at a time.
//
// Run() stops when a program traps. A trap is an instruction that leaves the
// PC where it found it, the most common example being a JMP to itself:
//
//	loop JMP loop
//
// This is the way that test programs written for the 6502 usually signal
// that they have finished.
package hardware
