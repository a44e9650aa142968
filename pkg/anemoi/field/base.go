package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
)

// baseSerializedLen is ceil(377/8), BLS12-377's base field Fq.
const baseSerializedLen = 48

// baseElt wraps fp.Element, BLS12-377's base field.
type baseElt struct {
	v fp.Element
}

func baseZero() Elt {
	var e fp.Element
	e.SetZero()
	return baseElt{e}
}

func baseOne() Elt {
	var e fp.Element
	e.SetOne()
	return baseElt{e}
}

func baseFromUint64(val uint64) Elt {
	var e fp.Element
	e.SetUint64(val)
	return baseElt{e}
}

func baseFromBigInt(v *big.Int) Elt {
	var e fp.Element
	e.SetBigInt(v)
	return baseElt{e}
}

func (e baseElt) Add(other Elt) Elt {
	o := other.(baseElt)
	var r fp.Element
	r.Add(&e.v, &o.v)
	return baseElt{r}
}

func (e baseElt) Sub(other Elt) Elt {
	o := other.(baseElt)
	var r fp.Element
	r.Sub(&e.v, &o.v)
	return baseElt{r}
}

func (e baseElt) Mul(other Elt) Elt {
	o := other.(baseElt)
	var r fp.Element
	r.Mul(&e.v, &o.v)
	return baseElt{r}
}

func (e baseElt) Square() Elt {
	var r fp.Element
	r.Square(&e.v)
	return baseElt{r}
}

func (e baseElt) Double() Elt {
	var r fp.Element
	r.Double(&e.v)
	return baseElt{r}
}

func (e baseElt) Inverse() Elt {
	if e.v.IsZero() {
		panic("field: inverse of zero element")
	}
	var r fp.Element
	r.Inverse(&e.v)
	return baseElt{r}
}

func (e baseElt) Pow(exp *big.Int) Elt {
	var r fp.Element
	r.Exp(e.v, exp)
	return baseElt{r}
}

func (e baseElt) IsZero() bool {
	return e.v.IsZero()
}

func (e baseElt) Equal(other Elt) bool {
	o, ok := other.(baseElt)
	if !ok {
		return false
	}
	return e.v.Equal(&o.v)
}

// Bytes returns the little-endian encoding of e. gnark-crypto's Bytes()
// returns the canonical big-endian form, so the byte order is reversed here.
func (e baseElt) Bytes() []byte {
	be := e.v.Bytes()
	return reverse(be[:])
}

func (e baseElt) String() string {
	return e.v.String()
}

func baseDeserialize(b []byte) (Elt, error) {
	if len(b) != baseSerializedLen {
		return nil, fmt.Errorf("field: base element must be %d bytes, got %d", baseSerializedLen, len(b))
	}
	be := reverse(b)
	asInt := new(big.Int).SetBytes(be)
	if asInt.Cmp(fp.Modulus()) >= 0 {
		return nil, fmt.Errorf("field: value %s is not less than the base field modulus", asInt.String())
	}
	var e fp.Element
	e.SetBigInt(asInt)
	return baseElt{e}, nil
}

func baseModulus() *big.Int {
	return fp.Modulus()
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
