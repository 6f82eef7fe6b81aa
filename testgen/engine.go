// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package testgen

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/ezrec/mipsvec/isa"
	"github.com/ezrec/mipsvec/synth"
)

// Synthesizer produces the literal for one placeholder.
type Synthesizer func(r *rand.Rand, pool Pool) string

// Engine substitutes template placeholders with synthesized literals.
type Engine struct {
	Rand        *rand.Rand                // Random source for every synthesizer.
	Synthesizer map[isa.Kind]Synthesizer // Synthesizer for each placeholder kind.
}

// defaultSynthesizer maps the placeholder kinds to their literals.
// Registers come from the pool, never from the whole register file.
var defaultSynthesizer = map[isa.Kind]Synthesizer{
	isa.KIND_REG:   func(r *rand.Rand, pool Pool) string { return pool.Pick(r) },
	isa.KIND_IMM16: func(r *rand.Rand, pool Pool) string { return synth.Imm16(r) },
	isa.KIND_ADDR:  func(r *rand.Rand, pool Pool) string { return synth.Address(r) },
	isa.KIND_SH:    func(r *rand.Rand, pool Pool) string { return synth.Shift(r) },
	isa.KIND_IMM32: func(r *rand.Rand, pool Pool) string { return synth.Imm32(r) },
}

// loadImmediate initializes a single register of the pool.
var loadImmediate = isa.Template{
	Opcode:   "li",
	Operands: []isa.Kind{isa.KIND_REG, isa.KIND_IMM32},
}

// NewEngine creates an engine with all placeholder kinds registered.
func NewEngine(r *rand.Rand) (e *Engine) {
	e = &Engine{
		Rand:        r,
		Synthesizer: make(map[isa.Kind]Synthesizer, len(defaultSynthesizer)),
	}

	for kind, fn := range defaultSynthesizer {
		e.Synthesizer[kind] = fn
	}

	return
}

// Validate checks that every placeholder of the template has a synthesizer.
func (e *Engine) Validate(tpl isa.Template) (err error) {
	for _, kind := range tpl.Operands {
		_, ok := e.Synthesizer[kind]
		if !ok {
			err = &ErrTemplate{Template: tpl.String(), Err: ErrSynthesizerMissing}
			return
		}
	}
	return
}

// Substitute resolves the template against the pool.
//
// Kinds are resolved in isa.Kinds() order, one occurrence at a time.
// Every step fills a distinct pending operand, so there are at most
// tpl.Arity() steps. Operands left pending are of a kind outside
// isa.Kinds(), and are reported as ErrSynthesizerMissing.
func (e *Engine) Substitute(tpl isa.Template, pool Pool) (ins string, err error) {
	err = e.Validate(tpl)
	if err != nil {
		return
	}

	if tpl.Count(isa.KIND_REG) > 0 && len(pool) == 0 {
		err = &ErrTemplate{Template: tpl.String(), Err: ErrPoolSize}
		return
	}

	values := make([]string, tpl.Arity())
	pending := slices.Clone(tpl.Operands)
	remaining := len(pending)

	for _, kind := range isa.Kinds() {
		for {
			pos := slices.Index(pending, kind)
			if pos < 0 {
				break
			}
			remaining--

			values[pos] = e.Synthesizer[kind](e.Rand, pool)
			pending[pos] = -1
		}
	}

	if remaining != 0 {
		err = &ErrTemplate{Template: tpl.String(), Err: ErrSynthesizerMissing}
		return
	}

	if len(values) == 0 {
		ins = tpl.Opcode
		return
	}

	ins = tpl.Opcode + " " + strings.Join(values, ", ")
	return
}
