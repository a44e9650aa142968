// Package hash builds the sponge and Jive constructions on top of the
// Anemoi permutation in package core: field/byte absorption with domain
// separation, squeezing, merging, and column-sum compression.
package hash

import (
	"bytes"
	"fmt"

	"github.com/weave-zk/anemoi/pkg/anemoi/field"
)

// DigestSize is the number of field elements in a digest. Every shipped
// Anemoi instance uses d = 1.
const DigestSize = 1

// Digest is a fixed-size sequence of field elements produced by hashing or
// merging. It is exactly the first DigestSize elements of a permuted state.
type Digest struct {
	f        field.Field
	elements [DigestSize]field.Elt
}

// NewDigest builds a Digest from exactly DigestSize elements, all belonging
// to the same field.
func NewDigest(f field.Field, elements [DigestSize]field.Elt) Digest {
	return Digest{f: f, elements: elements}
}

// Field reports which field this digest's elements belong to.
func (d Digest) Field() field.Field { return d.f }

// AsElements returns the digest's elements as a fixed-size array (a value
// copy of the digest's own array).
func (d Digest) AsElements() [DigestSize]field.Elt { return d.elements }

// ToElements copies the digest's elements out into a fresh slice.
func (d Digest) ToElements() []field.Elt {
	out := make([]field.Elt, DigestSize)
	copy(out, d.elements[:])
	return out
}

// Equal reports whether two digests hold equal elements in the same field.
func (d Digest) Equal(other Digest) bool {
	if d.f != other.f {
		return false
	}
	for i := range d.elements {
		if !d.elements[i].Equal(other.elements[i]) {
			return false
		}
	}
	return true
}

// ToBytes returns the canonical little-endian byte encoding of the digest:
// the concatenation of each element's serialized form.
func (d Digest) ToBytes() []byte {
	var buf bytes.Buffer
	for _, e := range d.elements {
		buf.Write(e.Bytes())
	}
	return buf.Bytes()
}

// DigestFromBytes parses a byte encoding produced by Digest.ToBytes back
// into a Digest for the given field. It fails if the input is the wrong
// length or any chunk does not encode a valid field element.
func DigestFromBytes(f field.Field, b []byte) (Digest, error) {
	width := field.SerializedLen(f)
	if len(b) != width*DigestSize {
		return Digest{}, fmt.Errorf("hash: digest must be %d bytes, got %d", width*DigestSize, len(b))
	}

	var elements [DigestSize]field.Elt
	for i := 0; i < DigestSize; i++ {
		e, err := field.Deserialize(f, b[i*width:(i+1)*width])
		if err != nil {
			return Digest{}, fmt.Errorf("hash: digest element %d: %w", i, err)
		}
		elements[i] = e
	}
	return Digest{f: f, elements: elements}, nil
}

// String renders the digest as its hex byte encoding.
func (d Digest) String() string {
	return fmt.Sprintf("%x", d.ToBytes())
}
