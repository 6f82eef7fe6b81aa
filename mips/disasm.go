// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mips

import (
	"fmt"
	"io"
	"strings"
)

// TEXT_DEFAULT is the default address of the text segment.
const TEXT_DEFAULT = 0x00003000

// marsHeader declares the data label memory operands are relative to.
const marsHeader = ".data\ndat: .space 1\n.text\n"

// Disassembler is a two pass disassembler for MIPS-C listings.
type Disassembler struct {
	Mars bool // If set, emits code assemblable by MARS.

	labels map[uint32]string // Jump and branch target labels.
}

// label returns the label of a target address, allocating a new one
// named after the first instruction that refers to it.
func (dis *Disassembler) label(name string, target uint32) string {
	if dis.labels == nil {
		dis.labels = make(map[uint32]string, 16)
	}

	label, ok := dis.labels[target]
	if !ok {
		label = fmt.Sprintf("%v_%v", name, len(dis.labels))
		dis.labels[target] = label
	}

	return label
}

// branch returns the label of a PC relative branch target.
func (dis *Disassembler) branch(name string, addr uint32, w Word) string {
	target := uint32(int64(addr) + 4 + int64(w.Offset())*4)
	return dis.label(name, target)
}

func (dis *Disassembler) decodeSpecial(w Word) (text string, err error) {
	switch w.Funct() {
	case FUNCT_SLL:
		if w == 0 {
			text = "nop"
			return
		}
		text = fmt.Sprintf("sll\t%v, %v, %v", w.Rd(), w.Rt(), w.Shamt())
	case FUNCT_SRL:
		text = fmt.Sprintf("srl\t%v, %v, %v", w.Rd(), w.Rt(), w.Shamt())
	case FUNCT_JR:
		text = fmt.Sprintf("jr\t%v", w.Rs())
	case FUNCT_ADDU, FUNCT_SUBU, FUNCT_AND, FUNCT_OR, FUNCT_XOR:
		name := map[uint8]string{
			FUNCT_ADDU: "addu",
			FUNCT_SUBU: "subu",
			FUNCT_AND:  "and",
			FUNCT_OR:   "or",
			FUNCT_XOR:  "xor",
		}[w.Funct()]
		text = fmt.Sprintf("%v\t%v, %v, %v", name, w.Rd(), w.Rs(), w.Rt())
	default:
		err = ErrOpcode(w)
	}

	return
}

// Decode returns the assembly text of the word at addr.
// Jump and branch targets are given labels as they are seen.
func (dis *Disassembler) Decode(addr uint32, w Word) (text string, err error) {
	switch w.Op() {
	case OP_SPECIAL:
		text, err = dis.decodeSpecial(w)
	case OP_REGIMM:
		if w.Rt() != REGIMM_BLTZ {
			err = ErrOpcode(w)
			return
		}
		text = fmt.Sprintf("bltz\t%v, %v", w.Rs(), dis.branch("bltz", addr, w))
	case OP_J:
		text = "j\t" + dis.label("j", w.Imm26()*4)
	case OP_JAL:
		text = "jal\t" + dis.label("jal", w.Imm26()*4)
	case OP_BEQ:
		text = fmt.Sprintf("beq\t%v, %v, %v", w.Rs(), w.Rt(), dis.branch("beq", addr, w))
	case OP_ADDIU:
		text = fmt.Sprintf("addiu\t%v, %v, %#x", w.Rt(), w.Rs(), w.Imm16())
	case OP_ORI:
		text = fmt.Sprintf("ori\t%v, %v, %#x", w.Rt(), w.Rs(), w.Imm16())
	case OP_LUI:
		text = fmt.Sprintf("lui\t%v, %#x", w.Rt(), w.Imm16())
	case OP_LW, OP_SW:
		name := "lw"
		if w.Op() == OP_SW {
			name = "sw"
		}
		base := ""
		if dis.Mars {
			base = "dat+"
		}
		text = fmt.Sprintf("%v\t%v, %v%#x(%v)", name, w.Rt(), base, w.Imm16(), w.Rs())
	default:
		err = ErrOpcode(w)
	}

	return
}

// Disassemble writes the assembly listing of a program.
//
// The first pass collects every jump and branch target, the second
// prints the listing with a label line before each target.
func (dis *Disassembler) Disassemble(prog *Program, output io.Writer) (err error) {
	clear(dis.labels)

	for _, line := range prog.Lines {
		_, err = dis.Decode(line.Addr, line.Word)
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
	}

	var sb strings.Builder
	if dis.Mars {
		sb.WriteString(marsHeader)
	}

	for addr, word := range prog.Words() {
		label, ok := dis.labels[addr]
		if ok {
			sb.WriteString(label + ":\n")
		}
		text, _ := dis.Decode(addr, word)
		sb.WriteString(text + "\n")
	}

	_, err = io.WriteString(output, sb.String())
	return
}
