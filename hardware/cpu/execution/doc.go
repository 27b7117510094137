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

// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detailed information about each instruction
// executed: the address it was fetched from, the definition, the number of
// bytes read and the number of cycles actually taken. Page faults, taken
// branches and known CPU bugs are also noted.
//
// The Result.IsValid() function checks that the information is consistent
// with the instruction definition. It is used to test the CPU but might be
// useful to hosts that want to sanity check every step.
package execution
