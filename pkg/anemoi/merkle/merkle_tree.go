// Package merkle implements a binary Merkle tree whose internal 2-to-1 node
// hashing is Anemoi's Jive compression (package hash).
package merkle

import (
	"fmt"
	"math/bits"

	"github.com/weave-zk/anemoi/pkg/anemoi/core"
	"github.com/weave-zk/anemoi/pkg/anemoi/field"
	"github.com/weave-zk/anemoi/pkg/anemoi/hash"
)

// NodeIndex indexes internal nodes of a Tree.
//
// Convention: nothing lives at index 0; index 1 is the root; indices 2 and
// 3 are the root's children; and so on.
type NodeIndex = uint64

// LeafIndex indexes the leafs of a Tree, left to right, starting at zero.
type LeafIndex = uint64

// Tree is a binary tree of Anemoi digests used to prove set membership.
// It holds at most 2^62 leafs.
type Tree struct {
	inst  *core.Instance
	nodes []hash.Digest
}

// New builds a Tree over the given leafs using inst's Jive compression for
// internal nodes. inst.T must be even and at least 2 (true of every shipped
// instance); the number of leafs must be a non-zero power of two.
func New(inst *core.Instance, leafs []hash.Digest) (*Tree, error) {
	numLeafs := len(leafs)
	if numLeafs == 0 {
		return nil, fmt.Errorf("merkle: cannot build a tree with zero leafs")
	}
	if !isPowerOfTwo(numLeafs) {
		return nil, fmt.Errorf("merkle: number of leafs must be a power of two, got %d", numLeafs)
	}

	nodes := make([]hash.Digest, 2*numLeafs)
	copy(nodes[numLeafs:], leafs)

	remaining := numLeafs
	for remaining > 1 {
		for i := 0; i < remaining; i += 2 {
			left := nodes[remaining+i]
			right := nodes[remaining+i+1]
			nodes[(remaining+i)/2] = hashTwo(inst, left, right)
		}
		remaining /= 2
	}

	return &Tree{inst: inst, nodes: nodes}, nil
}

// Root returns the tree's root digest.
func (t *Tree) Root() hash.Digest {
	return t.nodes[RootIndex]
}

// RootIndex is the index of the root node.
const RootIndex NodeIndex = 1

// AuthenticationPath returns the sibling digests on the path from the leaf
// at leafIndex up to (but not including) the root, ordered leaf-to-root.
func (t *Tree) AuthenticationPath(leafIndex LeafIndex) ([]hash.Digest, error) {
	numLeafs := uint64(len(t.nodes) / 2)
	if leafIndex >= numLeafs {
		return nil, fmt.Errorf("merkle: leaf index %d out of range for %d leafs", leafIndex, numLeafs)
	}

	height := bits.TrailingZeros64(numLeafs)
	path := make([]hash.Digest, 0, height)

	nodeIndex := numLeafs + leafIndex
	for nodeIndex > RootIndex {
		path = append(path, t.nodes[nodeIndex^1])
		nodeIndex /= 2
	}
	return path, nil
}

// VerifyAuthenticationPath recomputes the root from a leaf digest and its
// authentication path and checks it against root.
func VerifyAuthenticationPath(inst *core.Instance, root hash.Digest, leafIndex LeafIndex, numLeafs uint64, leaf hash.Digest, path []hash.Digest) bool {
	node := leaf
	index := numLeafs + leafIndex
	for _, sibling := range path {
		if index%2 == 0 {
			node = hashTwo(inst, node, sibling)
		} else {
			node = hashTwo(inst, sibling, node)
		}
		index /= 2
	}
	return node.Equal(root)
}

func hashTwo(inst *core.Instance, left, right hash.Digest) hash.Digest {
	input := make([]field.Elt, inst.T)
	half := inst.T / 2
	copy(input[:hash.DigestSize], left.AsElements()[:])
	copy(input[half:half+hash.DigestSize], right.AsElements()[:])
	for i := hash.DigestSize; i < half; i++ {
		input[i] = field.Zero(inst.F)
	}
	for i := half + hash.DigestSize; i < inst.T; i++ {
		input[i] = field.Zero(inst.F)
	}

	out := hash.Compress(inst, input)
	var elements [hash.DigestSize]field.Elt
	copy(elements[:], out[:hash.DigestSize])
	return hash.NewDigest(inst.F, elements)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
