// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mips

import (
	"fmt"
)

// Reg is a register field.
type Reg uint8

var regNames = map[Reg]string{
	0:  "$zero",
	8:  "$t0",
	9:  "$t1",
	10: "$t2",
	11: "$t3",
	12: "$t4",
	13: "$t5",
	14: "$t6",
	15: "$t7",
	31: "$ra",
}

// String returns the assembler name of the register.
func (reg Reg) String() string {
	name, ok := regNames[reg]
	if ok {
		return name
	}
	return fmt.Sprintf("$%d", uint8(reg))
}

// Major opcodes.
const (
	OP_SPECIAL = 0x00
	OP_REGIMM  = 0x01
	OP_J       = 0x02
	OP_JAL     = 0x03
	OP_BEQ     = 0x04
	OP_ADDIU   = 0x09
	OP_ORI     = 0x0d
	OP_LUI     = 0x0f
	OP_LW      = 0x23
	OP_SW      = 0x2b
)

// OP_SPECIAL function codes.
const (
	FUNCT_SLL  = 0x00
	FUNCT_SRL  = 0x02
	FUNCT_JR   = 0x08
	FUNCT_ADDU = 0x21
	FUNCT_SUBU = 0x23
	FUNCT_AND  = 0x24
	FUNCT_OR   = 0x25
	FUNCT_XOR  = 0x26
)

// OP_REGIMM rt selectors.
const (
	REGIMM_BLTZ = 0x00
)

// Word is a single 32-bit instruction.
type Word uint32

// MakeR creates an OP_SPECIAL register instruction.
func MakeR(funct uint8, rs, rt, rd Reg, shamt uint8) Word {
	return Word((uint32(OP_SPECIAL) << 26) |
		(uint32(rs&0x1f) << 21) |
		(uint32(rt&0x1f) << 16) |
		(uint32(rd&0x1f) << 11) |
		(uint32(shamt&0x1f) << 6) |
		uint32(funct&0x3f))
}

// MakeI creates an immediate instruction.
func MakeI(op uint8, rs, rt Reg, imm uint16) Word {
	return Word((uint32(op&0x3f) << 26) |
		(uint32(rs&0x1f) << 21) |
		(uint32(rt&0x1f) << 16) |
		uint32(imm))
}

// MakeJ creates a jump instruction to a word index.
func MakeJ(op uint8, target uint32) Word {
	return Word((uint32(op&0x3f) << 26) | (target & 0x3ffffff))
}

// Op returns the major opcode.
func (w Word) Op() uint8 {
	return uint8((w >> 26) & 0x3f)
}

// Rs returns the first source register.
func (w Word) Rs() Reg {
	return Reg((w >> 21) & 0x1f)
}

// Rt returns the second source, or immediate destination, register.
func (w Word) Rt() Reg {
	return Reg((w >> 16) & 0x1f)
}

// Rd returns the register destination.
func (w Word) Rd() Reg {
	return Reg((w >> 11) & 0x1f)
}

// Shamt returns the shift amount.
func (w Word) Shamt() uint8 {
	return uint8((w >> 6) & 0x1f)
}

// Funct returns the OP_SPECIAL function code.
func (w Word) Funct() uint8 {
	return uint8(w & 0x3f)
}

// Imm16 returns the immediate field.
func (w Word) Imm16() uint16 {
	return uint16(w & 0xffff)
}

// Offset returns the sign extended immediate field.
func (w Word) Offset() int32 {
	return int32(int16(w.Imm16()))
}

// Imm26 returns the jump target word index.
func (w Word) Imm26() uint32 {
	return uint32(w & 0x3ffffff)
}

// String returns the raw field decode of the word.
func (w Word) String() string {
	return fmt.Sprintf("%08x op:%02x rs:%v rt:%v rd:%v sh:%v fn:%02x",
		uint32(w), w.Op(), uint8(w.Rs()), uint8(w.Rt()), uint8(w.Rd()), w.Shamt(), w.Funct())
}
