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

package cpu

import (
	"github.com/nucco/jems/hardware/cpu/instructions"
	"github.com/nucco/jems/hardware/cpu/registers"
	"github.com/nucco/jems/hardware/memory/cpubus"
)

// operation is the implementation of an operator. Called by Step() after the
// opcode has been read. The operation is responsible for reading any operand
// bytes.
type operation func(mc *CPU, defn *instructions.Definition)

type entry struct {
	defn    *instructions.Definition
	execute operation
}

// dispatch is indexed by opcode. An entry with a nil definition is an illegal
// opcode.
var dispatch [256]entry

func init() {
	for op := 0; op < len(dispatch); op++ {
		defn := instructions.GetDefinition(uint8(op))
		if defn == nil {
			continue
		}

		f := operations[defn.Operator]
		if f == nil {
			panic("cpu: no operation for " + defn.Operator.String())
		}

		dispatch[op] = entry{defn: defn, execute: f}
	}
}

var operations = [instructions.NumOperators]operation{
	// flag instructions
	instructions.CLC: func(mc *CPU, _ *instructions.Definition) { mc.Status.Carry = false },
	instructions.CLD: func(mc *CPU, _ *instructions.Definition) { mc.Status.DecimalMode = false },
	instructions.CLI: func(mc *CPU, _ *instructions.Definition) { mc.Status.InterruptDisable = false },
	instructions.CLV: func(mc *CPU, _ *instructions.Definition) { mc.Status.Overflow = false },
	instructions.SEC: func(mc *CPU, _ *instructions.Definition) { mc.Status.Carry = true },
	instructions.SED: func(mc *CPU, _ *instructions.Definition) { mc.Status.DecimalMode = true },
	instructions.SEI: func(mc *CPU, _ *instructions.Definition) { mc.Status.InterruptDisable = true },

	instructions.NOP: func(_ *CPU, _ *instructions.Definition) {},

	// register transfers
	instructions.TAX: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.X, mc.A.Value()) },
	instructions.TAY: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.Y, mc.A.Value()) },
	instructions.TXA: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.A, mc.X.Value()) },
	instructions.TYA: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.A, mc.Y.Value()) },
	instructions.TSX: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.X, mc.SP.Value()) },

	// TXS is the only transfer that does not affect the status register
	instructions.TXS: func(mc *CPU, _ *instructions.Definition) { mc.SP.Load(mc.X.Value()) },

	// loads and stores
	instructions.LDA: func(mc *CPU, defn *instructions.Definition) { mc.transfer(&mc.A, mc.readOperand(defn)) },
	instructions.LDX: func(mc *CPU, defn *instructions.Definition) { mc.transfer(&mc.X, mc.readOperand(defn)) },
	instructions.LDY: func(mc *CPU, defn *instructions.Definition) { mc.transfer(&mc.Y, mc.readOperand(defn)) },
	instructions.STA: func(mc *CPU, defn *instructions.Definition) { mc.writeOperand(defn, mc.A.Value()) },
	instructions.STX: func(mc *CPU, defn *instructions.Definition) { mc.writeOperand(defn, mc.X.Value()) },
	instructions.STY: func(mc *CPU, defn *instructions.Definition) { mc.writeOperand(defn, mc.Y.Value()) },

	// stack
	instructions.PHA: func(mc *CPU, _ *instructions.Definition) { mc.push(mc.A.Value()) },
	instructions.PHP: func(mc *CPU, _ *instructions.Definition) { mc.push(mc.Status.Value()) },
	instructions.PLA: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.A, mc.pull()) },
	instructions.PLP: func(mc *CPU, _ *instructions.Definition) { mc.Status.Load(mc.pull()) },

	// logic
	instructions.AND: func(mc *CPU, defn *instructions.Definition) {
		mc.A.AND(mc.readOperand(defn))
		mc.Status.SetZN(mc.A.Value())
	},
	instructions.EOR: func(mc *CPU, defn *instructions.Definition) {
		mc.A.EOR(mc.readOperand(defn))
		mc.Status.SetZN(mc.A.Value())
	},
	instructions.ORA: func(mc *CPU, defn *instructions.Definition) {
		mc.A.ORA(mc.readOperand(defn))
		mc.Status.SetZN(mc.A.Value())
	},
	instructions.BIT: func(mc *CPU, defn *instructions.Definition) {
		v := mc.readOperand(defn)
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Overflow = v&registers.Overflow == registers.Overflow
		mc.Status.Sign = v&registers.Sign == registers.Sign
	},

	// arithmetic. decimal mode is not supported
	instructions.ADC: func(mc *CPU, defn *instructions.Definition) {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(mc.readOperand(defn), mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
	},
	instructions.SBC: func(mc *CPU, defn *instructions.Definition) {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(mc.readOperand(defn), mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())
	},
	instructions.CMP: func(mc *CPU, defn *instructions.Definition) { mc.compare(mc.A, mc.readOperand(defn)) },
	instructions.CPX: func(mc *CPU, defn *instructions.Definition) { mc.compare(mc.X, mc.readOperand(defn)) },
	instructions.CPY: func(mc *CPU, defn *instructions.Definition) { mc.compare(mc.Y, mc.readOperand(defn)) },

	// increments and decrements
	instructions.INX: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.X, mc.X.Value()+1) },
	instructions.INY: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.Y, mc.Y.Value()+1) },
	instructions.DEX: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.X, mc.X.Value()-1) },
	instructions.DEY: func(mc *CPU, _ *instructions.Definition) { mc.transfer(&mc.Y, mc.Y.Value()-1) },
	instructions.INC: func(mc *CPU, defn *instructions.Definition) {
		mc.modifyOperand(defn, func(r *registers.Register) { r.Load(r.Value() + 1) })
	},
	instructions.DEC: func(mc *CPU, defn *instructions.Definition) {
		mc.modifyOperand(defn, func(r *registers.Register) { r.Load(r.Value() - 1) })
	},

	// shifts and rotates
	instructions.ASL: func(mc *CPU, defn *instructions.Definition) {
		mc.modifyOperand(defn, func(r *registers.Register) { mc.Status.Carry = r.ASL() })
	},
	instructions.LSR: func(mc *CPU, defn *instructions.Definition) {
		mc.modifyOperand(defn, func(r *registers.Register) { mc.Status.Carry = r.LSR() })
	},
	instructions.ROL: func(mc *CPU, defn *instructions.Definition) {
		mc.modifyOperand(defn, func(r *registers.Register) { mc.Status.Carry = r.ROL(mc.Status.Carry) })
	},
	instructions.ROR: func(mc *CPU, defn *instructions.Definition) {
		mc.modifyOperand(defn, func(r *registers.Register) { mc.Status.Carry = r.ROR(mc.Status.Carry) })
	},

	// branches
	instructions.BCC: func(mc *CPU, _ *instructions.Definition) { mc.branch(!mc.Status.Carry) },
	instructions.BCS: func(mc *CPU, _ *instructions.Definition) { mc.branch(mc.Status.Carry) },
	instructions.BEQ: func(mc *CPU, _ *instructions.Definition) { mc.branch(mc.Status.Zero) },
	instructions.BNE: func(mc *CPU, _ *instructions.Definition) { mc.branch(!mc.Status.Zero) },
	instructions.BMI: func(mc *CPU, _ *instructions.Definition) { mc.branch(mc.Status.Sign) },
	instructions.BPL: func(mc *CPU, _ *instructions.Definition) { mc.branch(!mc.Status.Sign) },
	instructions.BVC: func(mc *CPU, _ *instructions.Definition) { mc.branch(!mc.Status.Overflow) },
	instructions.BVS: func(mc *CPU, _ *instructions.Definition) { mc.branch(mc.Status.Overflow) },

	// flow
	instructions.JMP: func(mc *CPU, defn *instructions.Definition) { mc.PC.Load(mc.effectiveAddress(defn)) },
	instructions.JSR: jsr,
	instructions.RTS: rts,
	instructions.BRK: brk,
	instructions.RTI: rti,
}

// transfer loads the value into the register and sets the zero and sign
// flags.
func (mc *CPU) transfer(r *registers.Register, v uint8) {
	r.Load(v)
	mc.Status.SetZN(v)
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	var result uint8
	mc.Status.Carry, result = r.Compare(v)
	mc.Status.SetZN(result)
}

// jsr pushes the address of the last byte of the JSR instruction. RTS adds
// one to the pulled address.
func jsr(mc *CPU, _ *instructions.Definition) {
	address := mc.fetchOperand16()
	mc.push16(mc.PC.Address() - 1)
	mc.PC.Load(address)
}

func rts(mc *CPU, _ *instructions.Definition) {
	mc.PC.Load(mc.pull16())
	mc.PC.Increment()
}

// brk pushes the PC and the status register, with the break flag set in the
// pushed value, and jumps through the BRK vector. The pushed PC is the
// address immediately following the BRK opcode.
func brk(mc *CPU, _ *instructions.Definition) {
	mc.push16(mc.PC.Address())
	mc.push(mc.Status.Value() | registers.Break)
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(cpubus.BRK)
}

// rti restores the status register and the PC. Unlike RTS the PC is not
// adjusted after it has been pulled.
func rti(mc *CPU, _ *instructions.Definition) {
	mc.Status.Load(mc.pull())
	mc.PC.Load(mc.pull16())
}
