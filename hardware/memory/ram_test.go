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

package memory_test

import (
	"strings"
	"testing"

	"github.com/nucco/jems/curated"
	"github.com/nucco/jems/hardware/memory"
	"github.com/nucco/jems/hardware/memory/cpubus"
	"github.com/nucco/jems/logger"
	"github.com/nucco/jems/test"
)

// RAM must satisfy the memory contract of the CPU
var _ cpubus.Memory = (*memory.RAM)(nil)

func TestReadWrite(t *testing.T) {
	ram := memory.NewRAM()

	ram.Write(0x0000, 0x01)
	ram.Write(0xffff, 0x02)
	ram.Write(0x8000, 0x03)
	test.ExpectEquality(t, ram.Read(0x0000), 0x01)
	test.ExpectEquality(t, ram.Read(0xffff), 0x02)
	test.ExpectEquality(t, ram.Read(0x8000), 0x03)
	test.ExpectEquality(t, ram.Peek(0x8000), 0x03)

	// untouched memory is zero
	test.ExpectEquality(t, ram.Read(0x1234), 0x00)

	ram.Clear()
	test.ExpectEquality(t, ram.Read(0xffff), 0x00)
}

func TestLoad(t *testing.T) {
	ram := memory.NewRAM()

	err := ram.Load(0xfffe, []byte{0x00, 0x04})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ram.Read(0xfffe), 0x00)
	test.ExpectEquality(t, ram.Read(0xffff), 0x04)

	err = ram.Load(0xffff, []byte{0xaa, 0xbb})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, memory.ImageOverflow), true)

	// failed load does not change memory
	test.ExpectEquality(t, ram.Read(0xffff), 0x04)
	test.ExpectEquality(t, ram.Read(0x0000), 0x00)
}

func TestProtect(t *testing.T) {
	logger.Clear()
	ram := memory.NewRAM()

	test.ExpectSuccess(t, ram.Load(0xf000, []byte{0xea, 0xea}))
	test.ExpectSuccess(t, ram.Protect(0xf000, 0xffff))
	test.ExpectFailure(t, ram.Protect(0x2000, 0x1000))

	ram.Write(0xf000, 0x00)
	test.ExpectEquality(t, ram.Read(0xf000), 0xea)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "RAM: write to protected address (0xf000) ignored\n")

	// writes immediately outside of the protected range are allowed
	ram.Write(0xefff, 0x11)
	test.ExpectEquality(t, ram.Read(0xefff), 0x11)

	// poke ignores protection
	ram.Poke(0xf001, 0x00)
	test.ExpectEquality(t, ram.Read(0xf001), 0x00)
}

func TestString(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0x0001, 0xab)
	s := strings.Split(ram.String(), "\n")
	test.DemandEquality(t, len(s), 18)
	test.ExpectEquality(t, s[2], "0- |  00 ab 00 00 00 00 00 00 00 00 00 00 00 00 00 00")
}

func TestSnapshot(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0x0200, 0x11)
	test.ExpectSuccess(t, ram.Protect(0xff00, 0xffff))

	snapshot := ram.Snapshot()
	ram.Write(0x0200, 0x22)
	test.ExpectEquality(t, snapshot.Read(0x0200), 0x11)

	// protection is copied
	snapshot.Write(0xff00, 0x33)
	test.ExpectEquality(t, snapshot.Read(0xff00), 0x00)
}
