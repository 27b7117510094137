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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/nucco/jems/hardware/cpu"
	"github.com/nucco/jems/hardware/cpu/execution"
)

// access is a single memory access made by the CPU.
type access struct {
	write   bool
	address uint16
	data    uint8
}

func (a access) String() string {
	if a.write {
		return fmt.Sprintf("write %04x=%02x", a.address, a.data)
	}
	return fmt.Sprintf("read %04x=%02x", a.address, a.data)
}

// mockMem is a flat 64K memory that records every access.
type mockMem struct {
	internal []uint8
	accesses []access
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

// putInstructions places bytes in memory without recording the accesses.
// Returns the address following the last byte.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

// assertAccesses compares the recorded accesses with the expected list.
func (mem *mockMem) assertAccesses(t *testing.T, expected ...access) {
	t.Helper()
	if len(mem.accesses) != len(expected) {
		t.Fatalf("wrong number of memory accesses (%d instead of %d): %v", len(mem.accesses), len(expected), mem.accesses)
	}
	for i := range expected {
		if mem.accesses[i] != expected[i] {
			t.Errorf("memory access %d is %v instead of %v", i, mem.accesses[i], expected[i])
		}
	}
}

// Clear sets all bytes in memory to zero and forgets the recorded accesses.
func (mem *mockMem) Clear() {
	clear(mem.internal)
	mem.accesses = mem.accesses[:0]
}

func (mem *mockMem) forget() {
	mem.accesses = mem.accesses[:0]
}

func (mem *mockMem) Read(address uint16) uint8 {
	v := mem.internal[address]
	mem.accesses = append(mem.accesses, access{address: address, data: v})
	return v
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
	mem.accesses = append(mem.accesses, access{write: true, address: address, data: data})
}

func read(address uint16, data uint8) access {
	return access{address: address, data: data}
}

func write(address uint16, data uint8) access {
	return access{write: true, address: address, data: data}
}

// step executes a single instruction and checks that the result is consistent
// with the instruction's definition.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	mc.Step()
	if err := mc.LastResult.IsValid(); err != nil {
		t.Fatalf("%v: %s", err, mc.LastResult)
	}
	return mc.LastResult
}
