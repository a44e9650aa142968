package field

import "testing"

func TestBatchInversion(t *testing.T) {
	for _, f := range []Field{Base, Scalar} {
		elts := []Elt{
			FromUint64(f, 3),
			FromUint64(f, 17),
			FromUint64(f, 123456),
		}
		inverses, err := BatchInversion(elts)
		if err != nil {
			t.Fatalf("%s: BatchInversion: %v", f, err)
		}
		for i, e := range elts {
			if !e.Mul(inverses[i]).Equal(One(f)) {
				t.Errorf("%s: element %d * its batch inverse != 1", f, i)
			}
		}
	}
}

func TestBatchInversionRejectsZero(t *testing.T) {
	f := Scalar
	elts := []Elt{FromUint64(f, 1), Zero(f)}
	if _, err := BatchInversion(elts); err == nil {
		t.Fatal("expected error when batch-inverting a zero element")
	}
}

func TestValidateField(t *testing.T) {
	for _, f := range []Field{Base, Scalar} {
		if err := ValidateField(f, FromUint64(f, 42)); err != nil {
			t.Errorf("%s: ValidateField: %v", f, err)
		}
	}
}
