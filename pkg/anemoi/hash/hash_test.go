package hash

import (
	"testing"

	"github.com/weave-zk/anemoi/pkg/anemoi/core"
	"github.com/weave-zk/anemoi/pkg/anemoi/field"
)

var testInstances = []*core.Instance{
	core.Anemoi2x1x128Scalar,
	core.Anemoi8x7x128Scalar,
	core.Anemoi12x11x128Scalar,
	core.Anemoi12x11x256Base,
}

func elements(f field.Field, vals ...uint64) []field.Elt {
	out := make([]field.Elt, len(vals))
	for i, v := range vals {
		out[i] = field.FromUint64(f, v)
	}
	return out
}

func TestHashFieldIsDeterministic(t *testing.T) {
	for _, inst := range testInstances {
		in := elements(inst.F, 1, 2, 3)
		a := HashField(inst, in)
		b := HashField(inst, in)
		if !a.Equal(b) {
			t.Fatalf("t=%d: HashField is not deterministic", inst.T)
		}
	}
}

func TestHashFieldLengthIsDigestSize(t *testing.T) {
	for _, inst := range testInstances {
		d := HashField(inst, elements(inst.F, 1, 2, 3, 4, 5))
		if len(d.AsElements()) != DigestSize {
			t.Fatalf("t=%d: digest has %d elements, want %d", inst.T, len(d.AsElements()), DigestSize)
		}
	}
}

func TestHashFieldDomainSeparation(t *testing.T) {
	inst := core.Anemoi8x7x128Scalar
	zerosR := make([]uint64, inst.R)
	zeros2R := make([]uint64, 2*inst.R)

	a := HashField(inst, elements(inst.F, zerosR...))
	b := HashField(inst, elements(inst.F, zeros2R...))
	if a.Equal(b) {
		t.Fatalf("hash_field([0;r]) == hash_field([0;2r]), expected the extra permutation to separate them")
	}
}

func TestHashBytesPaddingDisambiguation(t *testing.T) {
	for _, inst := range []*core.Instance{core.Anemoi12x11x128Scalar, core.Anemoi12x11x256Base} {
		x := []byte("this message is exactly forty-one bytes!!")
		if len(x)%chunkWidth == 0 {
			t.Fatalf("test fixture must not be a multiple of %d bytes", chunkWidth)
		}

		padded := append(append([]byte(nil), x...), 0x00)

		a := Hash(inst, x)
		b := Hash(inst, padded)
		if a.Equal(b) {
			t.Fatalf("%s: hash(x) == hash(x || 0x00), expected pad-one to distinguish them", inst.F)
		}
	}
}

func TestHashBytesFieldEquivalence(t *testing.T) {
	// When every field element fits in chunkWidth bytes (248 bits), hashing
	// the chunkWidth-byte-per-element byte encoding must equal HashField of
	// the elements themselves. Exercised on both fields: the Base field's
	// wider serialization (48 bytes) still only contributes its low
	// chunkWidth bytes per element, same as the narrower Scalar field.
	for _, inst := range []*core.Instance{core.Anemoi8x7x128Scalar, core.Anemoi8x7x128Base} {
		elems := elements(inst.F, 10, 20, 30, 40, 50, 60, 70)

		var raw []byte
		for _, e := range elems {
			b := e.Bytes()
			raw = append(raw, b[:chunkWidth]...)
		}

		byHash := Hash(inst, raw)
		byHashField := HashField(inst, elems)
		if !byHash.Equal(byHashField) {
			t.Fatalf("%s: hash(bytes) != hash_field(elements) for a 248-bit-safe input", inst.F)
		}
	}
}

func TestDigestRoundTrip(t *testing.T) {
	for _, inst := range testInstances {
		d := HashField(inst, elements(inst.F, 9, 8, 7))
		got, err := DigestFromBytes(inst.F, d.ToBytes())
		if err != nil {
			t.Fatalf("t=%d: DigestFromBytes: %v", inst.T, err)
		}
		if !got.Equal(d) {
			t.Fatalf("t=%d: digest round trip mismatch", inst.T)
		}
	}
}

func TestMergeIsDeterministicAndUsesBothDigests(t *testing.T) {
	inst := core.Anemoi12x11x128Scalar
	d1 := HashField(inst, elements(inst.F, 1))
	d2 := HashField(inst, elements(inst.F, 2))
	d3 := HashField(inst, elements(inst.F, 3))

	m1 := Merge(inst, d1, d2)
	m2 := Merge(inst, d1, d2)
	if !m1.Equal(m2) {
		t.Fatalf("Merge is not deterministic")
	}

	m3 := Merge(inst, d1, d3)
	if m1.Equal(m3) {
		t.Fatalf("Merge(d1,d2) == Merge(d1,d3): second digest is not being absorbed")
	}
}

func TestCompressKTwoMatchesCompress(t *testing.T) {
	inst := core.Anemoi12x11x128Scalar
	input := elements(inst.F, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)

	a := Compress(inst, input)
	b := CompressK(inst, input, 2)

	if len(a) != len(b) {
		t.Fatalf("compress returned %d elements, compress_k(.,2) returned %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("compress_k(.,2) != compress at index %d", i)
		}
	}
}

func TestCompressPanicsOnWrongLength(t *testing.T) {
	inst := core.Anemoi12x11x128Scalar
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on wrong-length compress input")
		}
	}()
	Compress(inst, elements(inst.F, 1, 2, 3))
}

func TestCompressKPanicsOnBadK(t *testing.T) {
	inst := core.Anemoi12x11x128Scalar
	input := elements(inst.F, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)

	for _, k := range []int{0, 5, 7} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for k=%d", k)
				}
			}()
			CompressK(inst, input, k)
		}()
	}
}

func TestCompressKFullStateCollapsesToOneElement(t *testing.T) {
	inst := core.Anemoi12x11x128Scalar
	input := elements(inst.F, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	out := CompressK(inst, input, inst.T)
	if len(out) != 1 {
		t.Fatalf("compress_k(input, t) returned %d elements, want 1", len(out))
	}
}
