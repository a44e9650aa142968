package field

import "fmt"

// BatchInversion inverts every element of elements using a single field
// inversion plus O(n) multiplications (Montgomery's trick), instead of n
// independent inversions. Useful when preparing many Flystel S-box inputs
// or MDS-matrix coefficients ahead of time. Returns an error if any element
// is zero.
func BatchInversion(elements []Elt) ([]Elt, error) {
	if len(elements) == 0 {
		return []Elt{}, nil
	}

	for i, e := range elements {
		if e.IsZero() {
			return nil, fmt.Errorf("field: cannot batch-invert a zero element at index %d", i)
		}
	}

	n := len(elements)
	scratch := make([]Elt, n)
	acc := elements[0]
	scratch[0] = elements[0]
	for i := 1; i < n; i++ {
		acc = acc.Mul(elements[i])
		scratch[i] = acc
	}

	acc = acc.Inverse()

	result := make([]Elt, n)
	for i := n - 1; i > 0; i-- {
		result[i] = acc.Mul(scratch[i-1])
		acc = acc.Mul(elements[i])
	}
	result[0] = acc

	return result, nil
}

// ValidateField runs the field axioms against a sample element, used in
// tests to sanity-check a new Elt implementation.
func ValidateField(f Field, sample Elt) error {
	zero := Zero(f)
	one := One(f)

	if !sample.Add(zero).Equal(sample) {
		return fmt.Errorf("field: additive identity failed: a + 0 != a")
	}
	if !sample.Mul(one).Equal(sample) {
		return fmt.Errorf("field: multiplicative identity failed: a * 1 != a")
	}
	if !sample.IsZero() {
		inv := sample.Inverse()
		if !sample.Mul(inv).Equal(one) {
			return fmt.Errorf("field: multiplicative inverse failed: a * a^-1 != 1")
		}
	}
	return nil
}
