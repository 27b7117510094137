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
	"context"

	"github.com/nucco/jems/hardware/cpu/execution"
)

// Run executes instructions as quickly as possible. It stops when the number
// of instructions reaches limit, when the machine traps or when the context
// is cancelled. A limit of zero or less means there is no limit.
//
// The onStep function is called after every instruction. If it returns an
// error the run stops and the error is returned.
//
// Returns the number of instructions executed and the total number of cycles
// those instructions took.
func (m *Machine) Run(ctx context.Context, limit int, onStep func(execution.Result) error) (int, int, error) {
	var instructions int
	var cycles int

	for limit <= 0 || instructions < limit {
		// the context is checked between instructions only
		select {
		case <-ctx.Done():
			return instructions, cycles, ctx.Err()
		default:
		}

		err := m.Step(onStep)
		instructions++
		cycles += m.CPU.LastResult.Cycles
		if err != nil {
			return instructions, cycles, err
		}

		if m.Trapped() {
			break
		}
	}

	return instructions, cycles, nil
}
