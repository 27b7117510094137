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

// Package cpubus defines the memory contract between the CPU and whatever
// memory system the CPU is attached to.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every access the CPU makes goes through this interface, in the order the
// processor makes them, so an implementation can observe the exact bus
// activity of each instruction.
//
// Memory is a full 16-bit address space. There is no error return: reading an
// address that has nothing mapped to it should return a value chosen by the
// implementation and writing to such an address should be ignored.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// BRK is the address where the BRK (and IRQ) address is stored.
const BRK = uint16(0xfffe)

// StackOrigin is the first address of the stack page.
const StackOrigin = uint16(0x0100)
