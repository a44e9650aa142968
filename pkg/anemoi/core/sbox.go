package core

import "github.com/weave-zk/anemoi/pkg/anemoi/field"

// applySBox applies the Flystel non-linear layer independently to each of
// the t/2 column pairs (X[i], Y[i]), mutating X and Y in place:
//
//	x <- x - beta*y^2
//	y <- y - x^(alpha_inv)
//	x <- x + beta*y^2 + delta
//
// Gamma is carried on Instance for completeness (it's one of the three
// named Flystel constants) but is not consumed here: its contribution is
// folded into the round constants added during constant injection instead
// of being applied inside the S-box itself.
func applySBox(inst *Instance, X, Y []field.Elt) {
	for i := range X {
		x, y := X[i], Y[i]

		x = x.Sub(inst.Beta.Mul(y.Square()))
		y = y.Sub(x.Pow(inst.AlphaInv))
		x = x.Add(inst.Beta.Mul(y.Square())).Add(inst.Delta)

		X[i], Y[i] = x, y
	}
}
