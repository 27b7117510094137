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
	"github.com/nucco/jems/hardware/cpu"
	"github.com/nucco/jems/hardware/memory"
)

// State stores the Machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU *cpu.CPU
	RAM *memory.RAM
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		CPU: s.CPU.Snapshot(),
		RAM: s.RAM.Snapshot(),
	}
}

// Snapshot the state of the Machine.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU: m.CPU.Snapshot(),
		RAM: m.RAM.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the Machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. the machine must
	// not change what is stored in the state
	m.CPU = state.CPU.Snapshot()
	m.RAM = state.RAM.Snapshot()
	m.CPU.Plumb(m.RAM)
}
