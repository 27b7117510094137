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

// Package memory implements the memory that the CPU is attached to when run
// by the jems command. The RAM type is a flat 64KiB address space with
// optional protected (read-only) ranges.
//
// The CPU itself only knows about the cpubus.Memory interface. Tests and other
// hosts are free to attach their own implementation of that interface.
package memory
