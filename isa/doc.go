// Package isa describes the MIPS instruction templates the test vector
// generator works from.
//
// A Template is an opcode followed by typed operand placeholders, written
// as text like "addiu REG, REG, IMM16". The reference InstructionSet lists
// the instructions implemented by the datapath under test, the subset whose
// datapath behavior is unique among them, and a few excluded templates.
package isa
