package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Permutations yields every ordered selection of k distinct indices
// from [0, n), in lexicographic order. Each yielded slice is a fresh copy.
// Nothing is yielded when k is negative or larger than n.
func Permutations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}

		perm := make([]int, 0, k)
		used := make([]bool, n)

		var walk func() bool
		walk = func() bool {
			if len(perm) == k {
				return yield(slices.Clone(perm))
			}
			for i := range n {
				if used[i] {
					continue
				}
				used[i] = true
				perm = append(perm, i)
				ok := walk()
				perm = perm[:len(perm)-1]
				used[i] = false
				if !ok {
					return false
				}
			}
			return true
		}

		walk()
	}
}

// PermutationCount returns n!/(n-k)!, or 0 when k is out of range.
func PermutationCount(n, k int) (count int) {
	if k < 0 || k > n {
		return
	}

	count = 1
	for i := range k {
		count *= n - i
	}

	return
}
