// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package testgen

import (
	"fmt"
	"io"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/mipsvec/internal"
	"github.com/ezrec/mipsvec/isa"
	"github.com/ezrec/mipsvec/synth"
)

// Driver generates one case per ordering of the distinguishing templates.
type Driver struct {
	Verbose bool // If set, logs each generated case.
	Options      // Run configuration.

	engine *Engine
}

// NewDriver creates a driver for a run, seeded from opts.Seed.
func NewDriver(opts Options) (d *Driver) {
	d = &Driver{
		Options: opts,
		engine:  NewEngine(synth.NewRand(opts.Seed)),
	}

	return
}

// Count returns the number of cases a run emits.
func (d *Driver) Count() int {
	if d.Set == nil {
		return 0
	}
	return internal.PermutationCount(len(d.Set.Distinguishing), d.Subset)
}

// Validate checks the configuration before any case is generated.
func (d *Driver) Validate() (err error) {
	if d.Set == nil {
		err = ErrSetMissing
		return
	}

	if len(d.Label) == 0 {
		err = ErrLabelEmpty
		return
	}

	available := len(d.Set.Distinguishing)
	if d.Subset < 0 || d.Subset > available {
		err = &ErrSubsetSize{Subset: d.Subset, Available: available}
		return
	}

	err = d.Set.Check()
	if err != nil {
		return
	}

	err = checkPool(d.Pinned, d.Extra)
	if err != nil {
		return
	}

	err = d.engine.Validate(loadImmediate)
	if err != nil {
		return
	}

	empty := len(d.Pinned)+d.Extra == 0
	for _, tpl := range d.Set.Distinguishing {
		err = d.engine.Validate(tpl)
		if err != nil {
			return
		}
		if empty && tpl.Count(isa.KIND_REG) > 0 {
			err = &ErrTemplate{Template: tpl.String(), Err: ErrPoolSize}
			return
		}
	}

	return
}

// Cases iterates over the generated cases, in permutation order.
// Iteration stops after the first error.
func (d *Driver) Cases() iter.Seq2[*Case, error] {
	return func(yield func(*Case, error) bool) {
		err := d.Validate()
		if err != nil {
			yield(nil, err)
			return
		}

		index := 0
		for perm := range internal.Permutations(len(d.Set.Distinguishing), d.Subset) {
			tpls := make([]isa.Template, len(perm))
			for n, pick := range perm {
				tpls[n] = d.Set.Distinguishing[pick]
			}

			label := fmt.Sprintf("%v%v", d.Label, index)
			c, err := d.engine.Assemble(label, tpls, d.Pinned, d.Extra)
			if d.Verbose && err == nil {
				log.Printf("%v: pool %v\n", label, c.Pool.Names())
			}
			if !yield(c, err) || err != nil {
				return
			}
			index++
		}
	}
}

// Generate writes every case to w, separated by a blank line.
//
// Output is written only once every case has been generated.
func (d *Driver) Generate(w io.Writer) (err error) {
	var sb strings.Builder

	for c, err := range d.Cases() {
		if err != nil {
			return err
		}
		if sb.Len() != 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("\n")

	_, err = io.WriteString(w, sb.String())
	return
}
