package isa

import (
	"errors"

	"github.com/ezrec/mipsvec/translate"
)

var f = translate.From

var (
	// Template syntax errors
	ErrOpcodeMissing  = errors.New(f("opcode missing"))
	ErrOperandMissing = errors.New(f("operand missing"))
)

// ErrPlaceholder is an operand token that names no placeholder kind.
type ErrPlaceholder string

func (err ErrPlaceholder) Error() string {
	return f("'%v' is not a placeholder", string(err))
}

// ErrSignature indicates a template disagrees with its opcode's operands.
type ErrSignature struct {
	Template string
	Want     []Kind
}

func (err *ErrSignature) Error() string {
	want := Template{Operands: err.Want}
	return f("'%v' expects operands '%v'", err.Template, want.operandString())
}

// ErrTemplateSyntax locates a template text that could not be parsed.
type ErrTemplateSyntax struct {
	Text string
	Err  error
}

func (err *ErrTemplateSyntax) Error() string {
	return f("template '%v' %v", err.Text, err.Err)
}

func (err *ErrTemplateSyntax) Unwrap() error {
	return err.Err
}

// ErrDuplicate is a template listed more than once as distinguishing.
type ErrDuplicate string

func (err ErrDuplicate) Error() string {
	return f("'%v' is distinguishing more than once", string(err))
}

// ErrExcluded is a distinguishing template that is also excluded.
type ErrExcluded string

func (err ErrExcluded) Error() string {
	return f("'%v' is both distinguishing and excluded", string(err))
}
