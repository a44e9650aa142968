package core

import (
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/weave-zk/anemoi/pkg/anemoi/field"
)

// deriveElement derives a "nothing up my sleeve" field element from a
// domain-separating label, by hashing the label with blake2b-512 and
// reducing the digest modulo the field's order. See DESIGN.md.
func deriveElement(f field.Field, label string) field.Elt {
	digest := blake2b.Sum512([]byte(label))
	asInt := new(big.Int).SetBytes(digest[:])
	asInt.Mod(asInt, field.Modulus(f))
	return field.FromBigInt(f, asInt)
}

// buildCirculantMDS builds the t/2 x t/2 circulant MDS matrix whose first
// row is (1, g, g+1, g+2, ...).
func buildCirculantMDS(f field.Field, g field.Elt, size int) [][]field.Elt {
	row := make([]field.Elt, size)
	row[0] = field.One(f)
	if size > 1 {
		row[1] = g
		for j := 2; j < size; j++ {
			row[j] = row[j-1].Add(field.One(f))
		}
	}

	m := make([][]field.Elt, size)
	for i := 0; i < size; i++ {
		m[i] = make([]field.Elt, size)
		for j := 0; j < size; j++ {
			m[i][j] = row[((j-i)%size+size)%size]
		}
	}
	return m
}
