// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Kind is the type of operand placeholder in a template.
type Kind int

// Placeholders are resolved in declaration order.
//
//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_REG   = Kind(0) // REG
	KIND_IMM16 = Kind(1) // IMM16
	KIND_ADDR  = Kind(2) // ADDR
	KIND_SH    = Kind(3) // SH
	KIND_IMM32 = Kind(4) // IMM32
)

// KIND_COUNT is the number of placeholder kinds.
const KIND_COUNT = 5

// Valid returns true if the kind is a declared placeholder kind.
func (kind Kind) Valid() bool {
	return kind >= 0 && kind < KIND_COUNT
}

// Kinds returns all placeholder kinds in substitution order.
func Kinds() []Kind {
	kinds := make([]Kind, KIND_COUNT)
	for n := range kinds {
		kinds[n] = Kind(n)
	}
	return kinds
}

// kindOf looks up a placeholder token.
func kindOf(token string) (kind Kind, ok bool) {
	for _, kind = range Kinds() {
		if kind.String() == token {
			ok = true
			return
		}
	}
	return
}
