package mips

import (
	"errors"

	"github.com/ezrec/mipsvec/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrOpcodeDecode = errors.New(f("decode"))
)

// ErrOpcode is a word with no known encoding.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Word(eo).String())
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeDecode
}

// ErrParseNumber is a listing line that is not a hex word.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a hex word", string(err))
}

// ErrSyntax locates a listing line that could not be decoded.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
