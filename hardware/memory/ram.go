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

package memory

import (
	"fmt"
	"strings"

	"github.com/nucco/jems/curated"
	"github.com/nucco/jems/logger"
)

// Sentinal error patterns returned by RAM.
const (
	ImageOverflow = "ram: image of %d bytes does not fit at origin 0x%04x"
	EmptyRange    = "ram: protected range is empty (0x%04x to 0x%04x)"
)

// Size of the address space covered by RAM.
const Size = 0x10000

type protected struct {
	origin uint16
	memtop uint16
}

// RAM is a flat 64KiB memory. It implements the cpubus.Memory interface.
//
// Ranges of RAM can be protected, turning them into ROM from the point of view
// of the CPU. Writes to a protected address are ignored and logged. Poke() and
// Load() can always write to protected areas.
type RAM struct {
	memory    []uint8
	protected []protected
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, Size),
	}
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Snapshot creates a copy of RAM, including the protected ranges.
func (ram *RAM) Snapshot() *RAM {
	n := &RAM{
		memory:    make([]uint8, len(ram.memory)),
		protected: make([]protected, len(ram.protected)),
	}
	copy(n.memory, ram.memory)
	copy(n.protected, ram.protected)
	return n
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	if ram.isProtected(address) {
		logger.Logf(logger.Allow, "RAM", "write to protected address (0x%04x) ignored", address)
		return
	}
	ram.memory[address] = data
}

// Peek returns the value at address without any side effects.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.memory[address]
}

// Poke sets the value at address even if the address is protected.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.memory[address] = value
}

// Load copies data into RAM starting at origin. Protection is ignored. It is
// an error for the data to extend beyond the end of the address space. In that
// case RAM is left unchanged.
func (ram *RAM) Load(origin uint16, data []byte) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(ImageOverflow, len(data), origin)
	}
	copy(ram.memory[origin:], data)
	return nil
}

// Protect marks the inclusive range origin to memtop as read-only.
func (ram *RAM) Protect(origin uint16, memtop uint16) error {
	if memtop < origin {
		return curated.Errorf(EmptyRange, origin, memtop)
	}
	ram.protected = append(ram.protected, protected{origin: origin, memtop: memtop})
	return nil
}

func (ram *RAM) isProtected(address uint16) bool {
	for _, p := range ram.protected {
		if address >= p.origin && address <= p.memtop {
			return true
		}
	}
	return false
}

// Clear sets every address to zero and removes all protection.
func (ram *RAM) Clear() {
	clear(ram.memory)
	ram.protected = ram.protected[:0]
}
