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

package disassembly

import (
	"sort"

	"github.com/nucco/jems/hardware/cpu/instructions"
)

// Linear decodes every address from origin to memtop inclusive.
func Linear(mem Memory, origin uint16, memtop uint16) []Entry {
	if memtop < origin {
		return nil
	}

	entries := make([]Entry, 0, int(memtop-origin)+1)
	for address := int(origin); address <= int(memtop); address++ {
		entries = append(entries, Decode(mem, uint16(address)))
	}
	return entries
}

// Flow decodes the instructions reachable from entry. Only addresses from
// origin to memtop inclusive are considered. The entries are returned in
// address order.
func Flow(mem Memory, origin uint16, memtop uint16, entry uint16) []Entry {
	inRange := func(a uint16) bool {
		return a >= origin && a <= memtop
	}

	seen := make(map[uint16]Entry)
	pending := []uint16{entry}

	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// follow the program until the flow stops or reaches an address that
		// has already been seen
		for inRange(address) {
			if _, ok := seen[address]; ok {
				break // for loop
			}

			e := Decode(mem, address)
			e.Level = EntryLevelBlessed
			seen[address] = e

			if e.Result.Illegal {
				break // for loop
			}

			if e.HasTarget {
				pending = append(pending, e.Target)
			}

			defn := e.Result.Defn
			if !continues(mem, defn, e, &pending) {
				break // for loop
			}

			next := address + uint16(defn.Bytes)
			if next < address {
				break // for loop
			}
			address = next
		}
	}

	entries := make([]Entry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Result.Address < entries[j].Result.Address
	})

	return entries
}

// continues returns false if execution does not continue with the next
// instruction in memory. The destination of an indirect JMP is added to the
// pending list.
func continues(mem Memory, defn *instructions.Definition, e Entry, pending *[]uint16) bool {
	switch defn.Operator {
	case instructions.JMP:
		if defn.AddressingMode == instructions.Indirect {
			ptr := e.Result.InstructionData.(uint16)
			hi := ptr + 1
			if ptr&0x00ff == 0x00ff {
				hi = ptr & 0xff00
			}
			*pending = append(*pending, uint16(mem.Peek(hi))<<8|uint16(mem.Peek(ptr)))
		}
		return false
	case instructions.BRK, instructions.RTS, instructions.RTI:
		return false
	}
	return true
}
