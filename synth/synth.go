// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package synth

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

const (
	REGISTER_COUNT  = 32           // Size of the register file.
	SHIFT_MAX       = 30           // Largest shift amount emitted.
	IMM16_DIGITS    = 4            // Hex digits in a 16-bit immediate.
	IMM32_DIGITS    = 8            // Hex digits in a 32-bit immediate.
	ADDRESS_LITERAL = "0x0000($0)" // The one memory operand emitted.
)

const hexDigits = "0123456789abcdef"

// NewRand returns a deterministic random source for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Entropy is the source RandomSeed reads from.
// The default crypto/rand reader aborts the process if the operating
// system cannot supply entropy, so only a replaced source returns errors.
var Entropy io.Reader = crand.Reader

// RandomSeed draws a seed from the Entropy source.
func RandomSeed() (seed uint64, err error) {
	var buf [8]byte
	_, err = io.ReadFull(Entropy, buf[:])
	if err != nil {
		err = &ErrRandomSource{Err: err}
		return
	}

	seed = binary.LittleEndian.Uint64(buf[:])
	return
}

// RegisterName formats a register index as an operand.
func RegisterName(index int) string {
	return fmt.Sprintf("$%d", index)
}

// RegisterIndex draws a register index uniformly from the register file.
func RegisterIndex(r *rand.Rand) int {
	return r.IntN(REGISTER_COUNT)
}

// Register draws a register operand uniformly from the register file.
func Register(r *rand.Rand) string {
	return RegisterName(RegisterIndex(r))
}

func hex(r *rand.Rand, digits int) string {
	var sb strings.Builder
	sb.Grow(2 + digits)
	sb.WriteString("0x")
	for range digits {
		sb.WriteByte(hexDigits[r.IntN(len(hexDigits))])
	}
	return sb.String()
}

// Imm16 returns a 16-bit immediate, 0x followed by four hex digits.
func Imm16(r *rand.Rand) string {
	return hex(r, IMM16_DIGITS)
}

// Imm32 returns a 32-bit immediate, 0x followed by eight hex digits.
func Imm32(r *rand.Rand) string {
	return hex(r, IMM32_DIGITS)
}

// Address returns the memory operand. Only the offset(base) syntax is
// exercised, so it is always offset zero from $0.
func Address(r *rand.Rand) string {
	return ADDRESS_LITERAL
}

// Shift returns a shift amount in [0, SHIFT_MAX], in decimal.
func Shift(r *rand.Rand) string {
	return fmt.Sprintf("%d", r.IntN(SHIFT_MAX+1))
}
