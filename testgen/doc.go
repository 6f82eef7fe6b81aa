// Package testgen generates randomized MIPS test vectors.
//
// An Engine substitutes the placeholders of an isa.Template with operand
// literals, drawing registers from a per-case Pool. Engine.Assemble turns an
// ordered list of templates into a Case: a load-immediate preamble that
// initializes every pool register, followed by labeled instructions. The
// Driver assembles one Case per ordering of the distinguishing templates and
// writes them all out.
package testgen
