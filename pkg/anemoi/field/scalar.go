package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// scalarSerializedLen is ceil(253/8) rounded up to a full word count; 32
// bytes leaves the top bits free, as required by the byte-hashing mode.
const scalarSerializedLen = 32

// scalarElt wraps fr.Element, BLS12-377's scalar field (also the base field
// of the companion Ed-on-BLS12-377 curve).
type scalarElt struct {
	v fr.Element
}

func scalarZero() Elt {
	var e fr.Element
	e.SetZero()
	return scalarElt{e}
}

func scalarOne() Elt {
	var e fr.Element
	e.SetOne()
	return scalarElt{e}
}

func scalarFromUint64(val uint64) Elt {
	var e fr.Element
	e.SetUint64(val)
	return scalarElt{e}
}

func scalarFromBigInt(v *big.Int) Elt {
	var e fr.Element
	e.SetBigInt(v)
	return scalarElt{e}
}

func (e scalarElt) Add(other Elt) Elt {
	o := other.(scalarElt)
	var r fr.Element
	r.Add(&e.v, &o.v)
	return scalarElt{r}
}

func (e scalarElt) Sub(other Elt) Elt {
	o := other.(scalarElt)
	var r fr.Element
	r.Sub(&e.v, &o.v)
	return scalarElt{r}
}

func (e scalarElt) Mul(other Elt) Elt {
	o := other.(scalarElt)
	var r fr.Element
	r.Mul(&e.v, &o.v)
	return scalarElt{r}
}

func (e scalarElt) Square() Elt {
	var r fr.Element
	r.Square(&e.v)
	return scalarElt{r}
}

func (e scalarElt) Double() Elt {
	var r fr.Element
	r.Double(&e.v)
	return scalarElt{r}
}

func (e scalarElt) Inverse() Elt {
	if e.v.IsZero() {
		panic("field: inverse of zero element")
	}
	var r fr.Element
	r.Inverse(&e.v)
	return scalarElt{r}
}

func (e scalarElt) Pow(exp *big.Int) Elt {
	var r fr.Element
	r.Exp(e.v, exp)
	return scalarElt{r}
}

func (e scalarElt) IsZero() bool {
	return e.v.IsZero()
}

func (e scalarElt) Equal(other Elt) bool {
	o, ok := other.(scalarElt)
	if !ok {
		return false
	}
	return e.v.Equal(&o.v)
}

func (e scalarElt) Bytes() []byte {
	be := e.v.Bytes()
	return reverse(be[:])
}

func (e scalarElt) String() string {
	return e.v.String()
}

func scalarModulus() *big.Int {
	return fr.Modulus()
}

func scalarDeserialize(b []byte) (Elt, error) {
	if len(b) != scalarSerializedLen {
		return nil, fmt.Errorf("field: scalar element must be %d bytes, got %d", scalarSerializedLen, len(b))
	}
	be := reverse(b)
	asInt := new(big.Int).SetBytes(be)
	if asInt.Cmp(fr.Modulus()) >= 0 {
		return nil, fmt.Errorf("field: value %s is not less than the scalar field modulus", asInt.String())
	}
	var e fr.Element
	e.SetBigInt(asInt)
	return scalarElt{e}, nil
}
