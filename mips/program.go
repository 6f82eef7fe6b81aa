// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mips

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Line is one word of a listing, with its source location.
type Line struct {
	LineNo int    // Line number in the listing.
	Text   string // Listing text.
	Addr   uint32 // Address of the word.
	Word   Word   // Instruction word.
}

// Program is a listing of consecutive instruction words.
type Program struct {
	Lines []Line
}

// ReadProgram reads a listing of hex words, one per line, placing the
// first at address text. Blank lines and lines containing "raw" (the
// image file header) are skipped.
func ReadProgram(input io.Reader, text uint32) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}
	addr := text

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		word := strings.TrimSpace(line)
		if len(word) == 0 || strings.Contains(word, "raw") {
			continue
		}

		word = strings.TrimPrefix(strings.TrimPrefix(word, "0x"), "0X")
		var value uint64
		value, err = strconv.ParseUint(word, 16, 32)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo: lineno,
			Text:   line,
			Addr:   addr,
			Word:   Word(value),
		})
		addr += 4
	}

	err = scanner.Err()
	return
}

// Words iterates over the address and word of each line.
func (prog *Program) Words() iter.Seq2[uint32, Word] {
	return func(yield func(addr uint32, word Word) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Addr, line.Word) {
				return
			}
		}
	}
}
