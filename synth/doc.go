// Package synth produces the operand literals placed into generated
// MIPS instructions: register names, hex immediates, the memory operand
// and shift amounts.
//
// Every synthesizer takes the random source explicitly, so a run seeded
// with NewRand is reproducible.
package synth
