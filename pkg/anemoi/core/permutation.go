package core

import "github.com/weave-zk/anemoi/pkg/anemoi/field"

// Permute applies the Anemoi permutation to state in place: inst.N rounds
// followed by a final linear layer (no constants, no S-box). len(state)
// must equal inst.T.
//
// Permute is a pure, deterministic function of state and inst: it has no
// side effects beyond mutating the caller-owned state slice, no hidden
// global state, no I/O, and no blocking.
func Permute(inst *Instance, state []field.Elt) {
	if len(state) != inst.T {
		panic("core: state length does not match instance width")
	}

	columns := inst.Columns()
	X := state[:columns]
	Y := state[columns:]

	for k := 0; k < inst.N; k++ {
		round(inst, X, Y, k)
	}
	linearLayer(inst, X, Y)
}
