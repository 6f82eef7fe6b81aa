// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package testgen

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/mipsvec/internal"
	"github.com/ezrec/mipsvec/isa"
)

// Case is one labeled, self-contained test vector.
type Case struct {
	Label    string   // Case label, unique per run.
	Pool     Pool     // Registers used by the case.
	Preamble []string // One load-immediate per pool entry.
	Body     []string // Labeled instructions, one per template.
}

// Assemble builds a case from the templates, in order.
//
// The preamble loads a fresh 32-bit immediate into each pool register,
// then each body line is prefixed with "<label>_<index>:".
func (e *Engine) Assemble(label string, tpls []isa.Template, pinned []int, extra int) (c *Case, err error) {
	for _, tpl := range tpls {
		err = e.Validate(tpl)
		if err != nil {
			return
		}
	}

	pool, err := NewPool(e.Rand, pinned, extra)
	if err != nil {
		return
	}

	c = &Case{
		Label:    label,
		Pool:     pool,
		Preamble: make([]string, 0, len(pool)),
		Body:     make([]string, 0, len(tpls)),
	}

	for _, reg := range pool {
		var ins string
		ins, err = e.Substitute(loadImmediate, Pool{reg})
		if err != nil {
			c = nil
			return
		}
		c.Preamble = append(c.Preamble, ins)
	}

	for n, tpl := range tpls {
		var ins string
		ins, err = e.Substitute(tpl, pool)
		if err != nil {
			c = nil
			return
		}
		c.Body = append(c.Body, fmt.Sprintf("%v_%v: %v", label, n, ins))
	}

	return
}

// Lines iterates over the preamble, then the body.
func (c *Case) Lines() iter.Seq[string] {
	return internal.IterSeqConcat(slices.Values(c.Preamble), slices.Values(c.Body))
}

// String returns the case as a multi-line block, without a final newline.
func (c *Case) String() string {
	return strings.Join(slices.Collect(c.Lines()), "\n")
}
