// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"slices"
)

// InstructionSet is the group of templates under test.
type InstructionSet struct {
	All            []Template // Every instruction the datapath implements.
	Distinguishing []Template // Instructions with a datapath path of their own.
	Excluded       []Template // Instructions never generated.
}

var (
	defaultAll = []string{
		"addiu REG, REG, IMM16",
		"ori REG, REG, IMM16",
		"lui REG, IMM16",
		"addu REG, REG, REG",
		"subu REG, REG, REG",
		"and REG, REG, REG",
		"or REG, REG, REG",
		"xor REG, REG, REG",
		"lw REG, ADDR",
		"sw REG, ADDR",
		"sll REG, REG, SH",
		"srl REG, REG, SH",
	}

	defaultDistinguishing = []string{
		"addiu REG, REG, IMM16",
		"lui REG, IMM16",
		"addu REG, REG, REG",
		"lw REG, ADDR",
		"sw REG, ADDR",
		"sll REG, REG, SH",
	}

	// Kept for reference only. The first two have swapped operands,
	// sub raises an overflow exception the datapath does not implement.
	defaultExcluded = []string{
		"addi REG, REG, REG",
		"add REG, REG, IMM16",
		"sub REG, REG, REG",
	}
)

func mustParseAll(texts []string) (tpls []Template) {
	tpls = make([]Template, len(texts))
	for n, text := range texts {
		tpls[n] = MustParseTemplate(text)
	}
	return
}

// Default returns a fresh copy of the reference instruction set.
func Default() *InstructionSet {
	return &InstructionSet{
		All:            mustParseAll(defaultAll),
		Distinguishing: mustParseAll(defaultDistinguishing),
		Excluded:       mustParseAll(defaultExcluded),
	}
}

// ParseTemplates parses a list of template texts.
func ParseTemplates(texts []string) (tpls []Template, err error) {
	tpls = make([]Template, 0, len(texts))
	for _, text := range texts {
		var tpl Template
		tpl, err = ParseTemplate(text)
		if err != nil {
			return
		}
		tpls = append(tpls, tpl)
	}
	return
}

// Check verifies the signatures of every generated template, and that
// the distinguishing templates are distinct and none of them is excluded.
// Excluded templates are not signature checked.
func (set *InstructionSet) Check() (err error) {
	for _, group := range [][]Template{set.All, set.Distinguishing} {
		for _, tpl := range group {
			err = tpl.Check()
			if err != nil {
				return
			}
		}
	}

	for n, tpl := range set.Distinguishing {
		if slices.ContainsFunc(set.Distinguishing[:n], tpl.Equal) {
			err = ErrDuplicate(tpl.String())
			return
		}
		if slices.ContainsFunc(set.Excluded, tpl.Equal) {
			err = ErrExcluded(tpl.String())
			return
		}
	}

	return
}
