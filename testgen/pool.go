// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package testgen

import (
	"math/rand/v2"
	"slices"

	"github.com/ezrec/mipsvec/synth"
)

// Pool is the set of registers shared by every instruction of a case.
//
// Indices may repeat. Repeats are what make the data dependencies between
// generated instructions observable.
type Pool []int

// NewPool returns the pinned registers followed by extra registers drawn
// with replacement from the register file.
func NewPool(r *rand.Rand, pinned []int, extra int) (pool Pool, err error) {
	err = checkPool(pinned, extra)
	if err != nil {
		return
	}

	pool = make(Pool, 0, len(pinned)+extra)
	pool = append(pool, pinned...)
	for range extra {
		pool = append(pool, synth.RegisterIndex(r))
	}

	return
}

// Pick returns a register operand drawn from the pool.
func (pool Pool) Pick(r *rand.Rand) string {
	return synth.RegisterName(pool[r.IntN(len(pool))])
}

// Contains returns true if the register index is in the pool.
func (pool Pool) Contains(index int) bool {
	return slices.Contains(pool, index)
}

// Names returns the register operands of the pool, in order.
func (pool Pool) Names() (names []string) {
	names = make([]string, len(pool))
	for n, index := range pool {
		names[n] = synth.RegisterName(index)
	}
	return
}

// checkPool validates pool parameters without drawing from the random source.
func checkPool(pinned []int, extra int) (err error) {
	if extra < 0 {
		err = ErrPoolSize
		return
	}

	for _, index := range pinned {
		if index < 0 || index >= synth.REGISTER_COUNT {
			err = ErrRegisterInvalid
			return
		}
	}

	return
}
