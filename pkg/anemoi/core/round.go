package core

import "github.com/weave-zk/anemoi/pkg/anemoi/field"

// round applies one full round k of the Anemoi permutation: constant
// injection, the linear layer, then the Flystel S-box layer.
func round(inst *Instance, X, Y []field.Elt, k int) {
	for i := range X {
		X[i] = X[i].Add(inst.C[k][i])
		Y[i] = Y[i].Add(inst.D[k][i])
	}

	linearLayer(inst, X, Y)
	applySBox(inst, X, Y)
}
