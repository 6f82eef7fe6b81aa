// Package mips decodes MIPS-C machine code back into assembly.
//
// A Program is read from a listing of hex words, one per line, as dumped
// from a ROM image. The Disassembler turns it into assembly text, giving
// jump and branch targets generated labels, and optionally emits code that
// the MARS simulator can assemble.
package mips
