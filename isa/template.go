// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"slices"
	"strings"
)

// Template is an instruction with placeholder operands.
type Template struct {
	Opcode   string // Instruction mnemonic.
	Operands []Kind // Placeholder kinds, in operand order.
}

// signatures are the operand lists of the known MIPS opcodes.
var signatures = map[string][]Kind{
	"add":   {KIND_REG, KIND_REG, KIND_REG},
	"addi":  {KIND_REG, KIND_REG, KIND_IMM16},
	"addiu": {KIND_REG, KIND_REG, KIND_IMM16},
	"addu":  {KIND_REG, KIND_REG, KIND_REG},
	"and":   {KIND_REG, KIND_REG, KIND_REG},
	"li":    {KIND_REG, KIND_IMM32},
	"lui":   {KIND_REG, KIND_IMM16},
	"lw":    {KIND_REG, KIND_ADDR},
	"or":    {KIND_REG, KIND_REG, KIND_REG},
	"ori":   {KIND_REG, KIND_REG, KIND_IMM16},
	"sll":   {KIND_REG, KIND_REG, KIND_SH},
	"srl":   {KIND_REG, KIND_REG, KIND_SH},
	"sub":   {KIND_REG, KIND_REG, KIND_REG},
	"subu":  {KIND_REG, KIND_REG, KIND_REG},
	"sw":    {KIND_REG, KIND_ADDR},
	"xor":   {KIND_REG, KIND_REG, KIND_REG},
}

// Signature returns the operand kinds of a known opcode.
func Signature(opcode string) (kinds []Kind, ok bool) {
	kinds, ok = signatures[opcode]
	if ok {
		kinds = slices.Clone(kinds)
	}
	return
}

// ParseTemplate parses the text form, ie "addiu REG, REG, IMM16".
func ParseTemplate(text string) (tpl Template, err error) {
	defer func() {
		if err != nil {
			err = &ErrTemplateSyntax{Text: text, Err: err}
		}
	}()

	opcode, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	if len(opcode) == 0 {
		err = ErrOpcodeMissing
		return
	}
	tpl.Opcode = opcode

	args = strings.TrimSpace(args)
	if len(args) == 0 {
		return
	}

	for _, token := range strings.Split(args, ",") {
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			err = ErrOperandMissing
			return
		}
		kind, ok := kindOf(token)
		if !ok {
			err = ErrPlaceholder(token)
			return
		}
		tpl.Operands = append(tpl.Operands, kind)
	}

	return
}

// MustParseTemplate is ParseTemplate for compiled-in templates.
func MustParseTemplate(text string) Template {
	tpl, err := ParseTemplate(text)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Arity returns the number of placeholders.
func (tpl Template) Arity() int {
	return len(tpl.Operands)
}

// Count returns the number of placeholders of a kind.
func (tpl Template) Count(kind Kind) (count int) {
	for _, op := range tpl.Operands {
		if op == kind {
			count++
		}
	}
	return
}

// Equal reports whether two templates have the same opcode and operands.
func (tpl Template) Equal(other Template) bool {
	return tpl.Opcode == other.Opcode && slices.Equal(tpl.Operands, other.Operands)
}

// Check verifies the operands of known opcodes against their signature.
// Unknown opcodes are accepted.
func (tpl Template) Check() (err error) {
	want, ok := signatures[tpl.Opcode]
	if !ok {
		return
	}
	if !slices.Equal(want, tpl.Operands) {
		err = &ErrSignature{Template: tpl.String(), Want: want}
	}
	return
}

func (tpl Template) operandString() string {
	tokens := make([]string, len(tpl.Operands))
	for n, kind := range tpl.Operands {
		tokens[n] = kind.String()
	}
	return strings.Join(tokens, ", ")
}

// String returns the text form of the template.
func (tpl Template) String() string {
	if len(tpl.Operands) == 0 {
		return tpl.Opcode
	}
	return tpl.Opcode + " " + tpl.operandString()
}
