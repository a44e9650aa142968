package hash

import (
	"fmt"

	"github.com/weave-zk/anemoi/pkg/anemoi/core"
	"github.com/weave-zk/anemoi/pkg/anemoi/field"
)

// Compress runs one Anemoi permutation over input and folds the result into
// t/2 outputs by column summation (the Jive compression mode). Panics if
// len(input) != inst.T.
func Compress(inst *core.Instance, input []field.Elt) []field.Elt {
	if len(input) != inst.T {
		panic(fmt.Sprintf("hash: compress requires exactly %d elements, got %d", inst.T, len(input)))
	}

	state := make([]field.Elt, inst.T)
	copy(state, input)
	core.Permute(inst, state)

	half := inst.T / 2
	out := make([]field.Elt, half)
	for i := 0; i < half; i++ {
		out[i] = input[i].Add(input[i+half]).Add(state[i]).Add(state[i+half])
	}
	return out
}

// CompressK generalizes Compress to a configurable fan-in: one permutation
// over input folded into t/k outputs. k = 2 coincides with Compress.
// Panics if t mod k != 0 or k is odd.
func CompressK(inst *core.Instance, input []field.Elt, k int) []field.Elt {
	if len(input) != inst.T {
		panic(fmt.Sprintf("hash: compress_k requires exactly %d elements, got %d", inst.T, len(input)))
	}
	if k <= 0 || inst.T%k != 0 {
		panic(fmt.Sprintf("hash: compress_k requires t mod k == 0, got t=%d k=%d", inst.T, k))
	}
	if k%2 != 0 {
		panic(fmt.Sprintf("hash: compress_k requires even k, got %d", k))
	}

	state := make([]field.Elt, inst.T)
	copy(state, input)
	core.Permute(inst, state)

	c := inst.T / k
	out := make([]field.Elt, c)
	for i := 0; i < c; i++ {
		acc := field.Zero(inst.F)
		for j := 0; j < k; j++ {
			idx := i + c*j
			acc = acc.Add(input[idx]).Add(state[idx])
		}
		out[i] = acc
	}
	return out
}
