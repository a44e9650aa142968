package hash

import (
	"github.com/weave-zk/anemoi/pkg/anemoi/core"
	"github.com/weave-zk/anemoi/pkg/anemoi/field"
)

// chunkWidth is the number of raw input bytes packed per absorbed field
// element in the byte-hashing mode. It is fixed at 31 regardless of which
// field an instance uses: 31 bytes (248 bits) is below both supported
// moduli, so the encoded integer always deserializes without overflow.
const chunkWidth = 31

// HashField absorbs a sequence of field elements into inst's sponge and
// squeezes a Digest.
func HashField(inst *core.Instance, elems []field.Elt) Digest {
	state := newZeroState(inst)

	sigma := 0
	if len(elems)%inst.R == 0 {
		sigma = 1
	}

	i := 0
	for _, e := range elems {
		state[i] = state[i].Add(e)
		i++
		if i == inst.R {
			core.Permute(inst, state)
			i = 0
		}
	}

	state[inst.T-1] = state[inst.T-1].Add(field.FromUint64(inst.F, uint64(sigma)))
	if sigma == 0 {
		state[i] = state[i].Add(field.One(inst.F))
		core.Permute(inst, state)
	}

	return squeeze(inst, state)
}

// Hash absorbs raw bytes, chunked chunkWidth bytes at a time into field
// elements, and squeezes a Digest. The "last chunk" predicate is the
// chunk's own index against the total chunk count, rather than an
// arithmetic comparison against the running byte count (a shape that's easy
// to get off by one).
func Hash(inst *core.Instance, data []byte) Digest {
	numElements := 0
	if len(data) > 0 {
		numElements = (len(data) + chunkWidth - 1) / chunkWidth
	}

	sigma := 0
	if numElements%inst.R == 0 {
		sigma = 1
	}

	state := newZeroState(inst)
	i := 0

	buf := make([]byte, field.SerializedLen(inst.F))
	for chunkIndex := 0; chunkIndex < numElements; chunkIndex++ {
		start := chunkIndex * chunkWidth
		end := start + chunkWidth
		if end > len(data) {
			end = len(data)
		}
		chunk := data[start:end]

		for j := range buf {
			buf[j] = 0
		}
		copy(buf, chunk)
		isLastChunk := chunkIndex == numElements-1
		if isLastChunk && len(chunk) < chunkWidth {
			buf[len(chunk)] = 1
		}

		e, err := field.Deserialize(inst.F, buf)
		if err != nil {
			// Unreachable on this path: the high byte is always zero, so
			// the encoded integer is < 2^248, below both supported moduli.
			panic("hash: byte-chunk encoding unexpectedly overflowed the field")
		}

		state[i] = state[i].Add(e)
		i++
		if i == inst.R {
			core.Permute(inst, state)
			i = 0
		}
	}

	state[inst.T-1] = state[inst.T-1].Add(field.FromUint64(inst.F, uint64(sigma)))
	if sigma == 0 {
		state[i] = state[i].Add(field.One(inst.F))
		core.Permute(inst, state)
	}

	return squeeze(inst, state)
}

// Merge folds two digests into one via a single permutation: d1 occupies
// the first DigestSize rate slots and d2 the next DigestSize, so both
// inputs are actually absorbed (a prior revision of this routine copied d1
// into both places, silently discarding d2).
func Merge(inst *core.Instance, d1, d2 Digest) Digest {
	if 2*DigestSize > inst.R {
		panic("hash: merge requires 2*DigestSize <= rate")
	}

	state := newZeroState(inst)
	copy(state[0:DigestSize], d1.elements[:])
	copy(state[DigestSize:2*DigestSize], d2.elements[:])

	core.Permute(inst, state)

	return squeeze(inst, state)
}

func newZeroState(inst *core.Instance) []field.Elt {
	state := make([]field.Elt, inst.T)
	for i := range state {
		state[i] = field.Zero(inst.F)
	}
	return state
}

func squeeze(inst *core.Instance, state []field.Elt) Digest {
	var elements [DigestSize]field.Elt
	copy(elements[:], state[:DigestSize])
	return NewDigest(inst.F, elements)
}
