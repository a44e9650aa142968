// Package core implements the Anemoi round permutation: the Flystel S-box,
// the MDS/PHT linear layer, the round function, and the permutation driver,
// parameterized by an immutable Instance shared across every invocation.
//
// Round constants and the MDS generator are derived deterministically at
// package init time in constants.go from domain-separating labels, a
// "nothing up my sleeve" construction rather than compile-time big-integer
// literals. See DESIGN.md for the full rationale.
package core

import (
	"math/big"

	"github.com/weave-zk/anemoi/pkg/anemoi/field"
)

// Instance is the immutable configuration for one Anemoi permutation: a
// field, a state width t, a rate r, a security level, and the derived
// constants (round constants, MDS matrix, Flystel constants).
type Instance struct {
	F        field.Field
	T        int
	R        int
	Security int

	Alpha    uint64
	AlphaInv *big.Int

	Beta, Gamma, Delta, Generator field.Elt

	N int

	// C and D hold the round constants for the two state halves, C[k][i]
	// added to X[i] and D[k][i] added to Y[i] in round k.
	C, D [][]field.Elt

	// M is the t/2 x t/2 MDS matrix. Nil when t/2 == 1 (the scalar-1 case).
	M [][]field.Elt
}

// Columns returns t/2, the number of Flystel column pairs.
func (i *Instance) Columns() int { return i.T / 2 }

// defaultAlpha is the first S-box exponent tried. buildInstance uses the
// smallest odd alpha >= defaultAlpha that is invertible mod p-1: 5 for the
// Base field, 11 for the Scalar field (whose p-1 is divisible by 3, 5 and 7).
const defaultAlpha = 5

func buildInstance(f field.Field, t, r, security, rounds int) *Instance {
	if t%2 != 0 {
		panic("core: state width t must be even")
	}

	modulus := field.Modulus(f)
	pMinus1 := new(big.Int).Sub(modulus, big.NewInt(1))
	alpha := uint64(defaultAlpha)
	alphaInv := new(big.Int).ModInverse(new(big.Int).SetUint64(alpha), pMinus1)
	for alphaInv == nil && alpha < 64 {
		alpha += 2
		alphaInv = new(big.Int).ModInverse(new(big.Int).SetUint64(alpha), pMinus1)
	}
	if alphaInv == nil {
		panic("core: alpha is not invertible mod p-1 for this field")
	}

	inst := &Instance{
		F:        f,
		T:        t,
		R:        r,
		Security: security,
		Alpha:    alpha,
		AlphaInv: alphaInv,
		N:        rounds,
	}

	label := func(part string) string {
		return "Anemoi/" + f.String() + "/t" + itoa(t) + "/r" + itoa(r) +
			"/sec" + itoa(security) + "/" + part
	}
	inst.Beta = deriveElement(f, label("beta"))
	inst.Gamma = deriveElement(f, label("gamma"))
	inst.Delta = deriveElement(f, label("delta"))
	inst.Generator = deriveElement(f, label("generator"))

	columns := t / 2
	inst.C = make([][]field.Elt, rounds)
	inst.D = make([][]field.Elt, rounds)
	for k := 0; k < rounds; k++ {
		inst.C[k] = make([]field.Elt, columns)
		inst.D[k] = make([]field.Elt, columns)
		for col := 0; col < columns; col++ {
			inst.C[k][col] = deriveElement(f, label("C/"+itoa(k)+"/"+itoa(col))).Add(inst.Gamma)
			inst.D[k][col] = deriveElement(f, label("D/"+itoa(k)+"/"+itoa(col))).Add(inst.Gamma)
		}
	}

	if columns > 1 {
		inst.M = buildCirculantMDS(f, inst.Generator, columns)
	}

	return inst
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// roundsFor returns the round count for the given state width and security
// level; see DESIGN.md.
func roundsFor(t, security int) int {
	switch t {
	case 2:
		if security == 128 {
			return 19
		}
		return 21
	case 8:
		if security == 128 {
			return 12
		}
		return 14
	case 12:
		if security == 128 {
			return 10
		}
		return 12
	default:
		panic("core: unsupported state width")
	}
}

// The twelve shipped instances: three (t, r) shapes, two security levels,
// two fields.
var (
	Anemoi2x1x128Base    = buildInstance(field.Base, 2, 1, 128, roundsFor(2, 128))
	Anemoi2x1x256Base    = buildInstance(field.Base, 2, 1, 256, roundsFor(2, 256))
	Anemoi8x7x128Base    = buildInstance(field.Base, 8, 7, 128, roundsFor(8, 128))
	Anemoi8x7x256Base    = buildInstance(field.Base, 8, 7, 256, roundsFor(8, 256))
	Anemoi12x11x128Base  = buildInstance(field.Base, 12, 11, 128, roundsFor(12, 128))
	Anemoi12x11x256Base  = buildInstance(field.Base, 12, 11, 256, roundsFor(12, 256))

	Anemoi2x1x128Scalar   = buildInstance(field.Scalar, 2, 1, 128, roundsFor(2, 128))
	Anemoi2x1x256Scalar   = buildInstance(field.Scalar, 2, 1, 256, roundsFor(2, 256))
	Anemoi8x7x128Scalar   = buildInstance(field.Scalar, 8, 7, 128, roundsFor(8, 128))
	Anemoi8x7x256Scalar   = buildInstance(field.Scalar, 8, 7, 256, roundsFor(8, 256))
	Anemoi12x11x128Scalar = buildInstance(field.Scalar, 12, 11, 128, roundsFor(12, 128))
	Anemoi12x11x256Scalar = buildInstance(field.Scalar, 12, 11, 256, roundsFor(12, 256))
)
