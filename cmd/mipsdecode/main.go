// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/mipsvec/mips"
)

func main() {
	var text uint64
	var mars bool

	flag.Uint64Var(&text, "t", mips.TEXT_DEFAULT, "Start address of the text segment")
	flag.BoolVar(&mars, "m", false, "Generate code assemblable in MARS")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one machine code file, got %v", os.Args[0], flag.Args())
	}

	filename := flag.Arg(0)
	inf, err := os.Open(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
	defer inf.Close()

	prog, err := mips.ReadProgram(inf, uint32(text))
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	dis := &mips.Disassembler{Mars: mars}
	err = dis.Disassemble(prog, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
}
