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

package instructions_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/nucco/jems/hardware/cpu/instructions"
	"github.com/nucco/jems/test"
)

// reference listing of the documented NMOS 6502 instruction set. each entry
// is opcode, mnemonic, addressing mode and base cycles. an asterisk after the
// cycles means that the instruction takes longer if a page is crossed
const reference = `
	00 BRK imp 7   01 ORA xin 6   05 ORA zpg 3   06 ASL zpg 5
	08 PHP imp 3   09 ORA imm 2   0A ASL acc 2   0D ORA abs 4
	0E ASL abs 6   10 BPL rel 2*  11 ORA iny 5*  15 ORA zpx 4
	16 ASL zpx 6   18 CLC imp 2   19 ORA aby 4*  1D ORA abx 4*
	1E ASL abx 7   20 JSR abs 6   21 AND xin 6   24 BIT zpg 3
	25 AND zpg 3   26 ROL zpg 5   28 PLP imp 4   29 AND imm 2
	2A ROL acc 2   2C BIT abs 4   2D AND abs 4   2E ROL abs 6
	30 BMI rel 2*  31 AND iny 5*  35 AND zpx 4   36 ROL zpx 6
	38 SEC imp 2   39 AND aby 4*  3D AND abx 4*  3E ROL abx 7
	40 RTI imp 6   41 EOR xin 6   45 EOR zpg 3   46 LSR zpg 5
	48 PHA imp 3   49 EOR imm 2   4A LSR acc 2   4C JMP abs 3
	4D EOR abs 4   4E LSR abs 6   50 BVC rel 2*  51 EOR iny 5*
	55 EOR zpx 4   56 LSR zpx 6   58 CLI imp 2   59 EOR aby 4*
	5D EOR abx 4*  5E LSR abx 7   60 RTS imp 6   61 ADC xin 6
	65 ADC zpg 3   66 ROR zpg 5   68 PLA imp 4   69 ADC imm 2
	6A ROR acc 2   6C JMP ind 5   6D ADC abs 4   6E ROR abs 6
	70 BVS rel 2*  71 ADC iny 5*  75 ADC zpx 4   76 ROR zpx 6
	78 SEI imp 2   79 ADC aby 4*  7D ADC abx 4*  7E ROR abx 7
	81 STA xin 6   84 STY zpg 3   85 STA zpg 3   86 STX zpg 3
	88 DEY imp 2   8A TXA imp 2   8C STY abs 4   8D STA abs 4
	8E STX abs 4   90 BCC rel 2*  91 STA iny 6   94 STY zpx 4
	95 STA zpx 4   96 STX zpy 4   98 TYA imp 2   99 STA aby 5
	9A TXS imp 2   9D STA abx 5   A0 LDY imm 2   A1 LDA xin 6
	A2 LDX imm 2   A4 LDY zpg 3   A5 LDA zpg 3   A6 LDX zpg 3
	A8 TAY imp 2   A9 LDA imm 2   AA TAX imp 2   AC LDY abs 4
	AD LDA abs 4   AE LDX abs 4   B0 BCS rel 2*  B1 LDA iny 5*
	B4 LDY zpx 4   B5 LDA zpx 4   B6 LDX zpy 4   B8 CLV imp 2
	B9 LDA aby 4*  BA TSX imp 2   BC LDY abx 4*  BD LDA abx 4*
	BE LDX aby 4*  C0 CPY imm 2   C1 CMP xin 6   C4 CPY zpg 3
	C5 CMP zpg 3   C6 DEC zpg 5   C8 INY imp 2   C9 CMP imm 2
	CA DEX imp 2   CC CPY abs 4   CD CMP abs 4   CE DEC abs 6
	D0 BNE rel 2*  D1 CMP iny 5*  D5 CMP zpx 4   D6 DEC zpx 6
	D8 CLD imp 2   D9 CMP aby 4*  DD CMP abx 4*  DE DEC abx 7
	E0 CPX imm 2   E1 SBC xin 6   E4 CPX zpg 3   E5 SBC zpg 3
	E6 INC zpg 5   E8 INX imp 2   E9 SBC imm 2   EA NOP imp 2
	EC CPX abs 4   ED SBC abs 4   EE INC abs 6   F0 BEQ rel 2*
	F1 SBC iny 5*  F5 SBC zpx 4   F6 INC zpx 6   F8 SED imp 2
	F9 SBC aby 4*  FD SBC abx 4*  FE INC abx 7
`

var modeAbbreviations = map[string]instructions.AddressingMode{
	"imp": instructions.Implied,
	"acc": instructions.Accumulator,
	"imm": instructions.Immediate,
	"rel": instructions.Relative,
	"abs": instructions.Absolute,
	"zpg": instructions.ZeroPage,
	"ind": instructions.Indirect,
	"xin": instructions.IndexedIndirect,
	"iny": instructions.IndirectIndexed,
	"abx": instructions.AbsoluteIndexedX,
	"aby": instructions.AbsoluteIndexedY,
	"zpx": instructions.ZeroPageIndexedX,
	"zpy": instructions.ZeroPageIndexedY,
}

func TestTableAgainstReference(t *testing.T) {
	f := strings.Fields(reference)
	test.DemandEquality(t, len(f)%4, 0)

	seen := make(map[uint8]bool)

	for i := 0; i < len(f); i += 4 {
		opcode, err := strconv.ParseUint(f[i], 16, 8)
		test.DemandSuccess(t, err)
		seen[uint8(opcode)] = true

		defn := instructions.GetDefinition(uint8(opcode))
		if defn == nil {
			t.Errorf("no definition for opcode %s", f[i])
			continue
		}

		cycles := strings.TrimSuffix(f[i+3], "*")
		c, err := strconv.Atoi(cycles)
		test.DemandSuccess(t, err)

		test.ExpectEquality(t, defn.OpCode, uint8(opcode), f[i])
		test.ExpectEquality(t, defn.Mnemonic(), f[i+1], f[i])
		test.ExpectEquality(t, defn.AddressingMode, modeAbbreviations[f[i+2]], f[i])
		test.ExpectEquality(t, defn.Cycles, c, f[i])
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), f[i])
		test.ExpectEquality(t, defn.PageSensitive, cycles != f[i+3], f[i])
	}

	test.ExpectEquality(t, len(seen), 151)

	// every opcode not in the reference listing is undefined
	for opcode := 0; opcode <= 0xff; opcode++ {
		if !seen[uint8(opcode)] {
			test.ExpectEquality(t, instructions.GetDefinition(uint8(opcode)) == nil, true, opcode)
		}
	}

	test.ExpectEquality(t, len(instructions.GetDefinitions()), 151)
}

func TestEffectCategories(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		switch defn.Operator {
		case instructions.STA, instructions.STX, instructions.STY, instructions.PHA, instructions.PHP:
			test.ExpectEquality(t, defn.Effect, instructions.Write, defn.OpCode)
		case instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR, instructions.INC, instructions.DEC:
			test.ExpectEquality(t, defn.Effect, instructions.RMW, defn.OpCode)
		case instructions.JSR, instructions.RTS:
			test.ExpectEquality(t, defn.Effect, instructions.Subroutine, defn.OpCode)
		case instructions.BRK, instructions.RTI:
			test.ExpectEquality(t, defn.Effect, instructions.Interrupt, defn.OpCode)
		case instructions.JMP:
			test.ExpectEquality(t, defn.Effect, instructions.Flow, defn.OpCode)
		}

		test.ExpectEquality(t, defn.IsBranch(), defn.AddressingMode == instructions.Relative, defn.OpCode)
	}
}

func TestOperatorNames(t *testing.T) {
	for o := instructions.Operator(0); o < instructions.NumOperators; o++ {
		p, ok := instructions.OperatorFromMnemonic(o.String())
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, p, o)
	}

	_, ok := instructions.OperatorFromMnemonic("XXX")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, instructions.NoOperator.String(), "???")
}

func TestDefinitionString(t *testing.T) {
	defn := instructions.GetDefinition(0xbd)
	test.DemandEquality(t, defn != nil, true)
	test.ExpectEquality(t, defn.String(), "bd LDA +3bytes (4 cycles) [mode=AbsoluteIndexedX pagesens=true effect=Read]")
}
