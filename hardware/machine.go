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

package hardware

import (
	"github.com/nucco/jems/curated"
	"github.com/nucco/jems/hardware/cpu"
	"github.com/nucco/jems/hardware/memory"
	"github.com/nucco/jems/hardware/memory/cpubus"
)

// Machine is a 6502 attached to 64K of RAM.
type Machine struct {
	CPU *cpu.CPU
	RAM *memory.RAM
}

// NewMachine creates a new Machine. The CPU is in the reset state with the PC
// set to zero. The RAM is empty.
func NewMachine() *Machine {
	m := &Machine{
		RAM: memory.NewRAM(),
	}
	m.CPU = cpu.NewCPU(m.RAM)
	return m
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset resets the CPU and loads the PC from the reset vector. RAM is not
// changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.CPU.LoadPCIndirect(cpubus.Reset)
}

// Load copies the data into RAM at origin and sets the entry point.
func (m *Machine) Load(origin uint16, data []uint8, entry uint16) error {
	if err := m.RAM.Load(origin, data); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	m.SetEntry(entry)
	return nil
}

// SetEntry writes the entry point to the reset vector and resets the machine.
func (m *Machine) SetEntry(entry uint16) {
	m.RAM.Poke(cpubus.Reset, uint8(entry))
	m.RAM.Poke(cpubus.Reset+1, uint8(entry>>8))
	m.Reset()
}
