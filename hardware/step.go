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
	"github.com/nucco/jems/hardware/cpu/execution"
)

// Step executes a single instruction. The onStep function, if it is not nil,
// is called with the result of the instruction.
func (m *Machine) Step(onStep func(execution.Result) error) error {
	m.CPU.Step()
	if onStep != nil {
		return onStep(m.CPU.LastResult)
	}
	return nil
}

// Trapped returns true if the most recent instruction left the PC unchanged.
// An illegal opcode always advances the PC so can never trap.
func (m *Machine) Trapped() bool {
	r := m.CPU.LastResult
	return r.Final && !r.Illegal && m.CPU.PC.Address() == r.Address
}
