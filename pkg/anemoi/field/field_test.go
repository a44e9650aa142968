package field

import (
	"math/big"
	"testing"
)

func TestFieldIdentities(t *testing.T) {
	for _, f := range []Field{Base, Scalar} {
		zero := Zero(f)
		one := One(f)

		if !zero.IsZero() {
			t.Errorf("%s: Zero() is not IsZero()", f)
		}
		five := FromUint64(f, 5)
		if !five.Add(zero).Equal(five) {
			t.Errorf("%s: a + 0 != a", f)
		}
		if !five.Mul(one).Equal(five) {
			t.Errorf("%s: a * 1 != a", f)
		}
		if !five.Sub(five).IsZero() {
			t.Errorf("%s: a - a != 0", f)
		}
		if !five.Square().Equal(five.Mul(five)) {
			t.Errorf("%s: square != self-mul", f)
		}
		if !five.Double().Equal(five.Add(five)) {
			t.Errorf("%s: double != self-add", f)
		}
		if !five.Mul(five.Inverse()).Equal(one) {
			t.Errorf("%s: a * inv(a) != 1", f)
		}
		if !five.Pow(big.NewInt(2)).Equal(five.Square()) {
			t.Errorf("%s: pow(2) != square", f)
		}
	}
}

func TestFieldInverseOfZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on inverse of zero")
		}
	}()
	Zero(Scalar).Inverse()
}

func TestFieldRoundTrip(t *testing.T) {
	for _, f := range []Field{Base, Scalar} {
		want := FromUint64(f, 123456789)
		b := want.Bytes()
		if len(b) != SerializedLen(f) {
			t.Fatalf("%s: Bytes() length = %d, want %d", f, len(b), SerializedLen(f))
		}
		got, err := Deserialize(f, b)
		if err != nil {
			t.Fatalf("%s: Deserialize: %v", f, err)
		}
		if !got.Equal(want) {
			t.Errorf("%s: round trip mismatch: got %s, want %s", f, got, want)
		}
	}
}

func TestFieldDeserializeRejectsOverflow(t *testing.T) {
	for _, f := range []Field{Base, Scalar} {
		n := SerializedLen(f)
		allFF := make([]byte, n)
		for i := range allFF {
			allFF[i] = 0xff
		}
		if _, err := Deserialize(f, allFF); err == nil {
			t.Errorf("%s: expected deserialization of all-0xff to fail", f)
		}
	}
}
