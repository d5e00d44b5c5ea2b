package fmtest

import (
	"testing"

	"github.com/gordian-engine/fixmerkle"
	"github.com/gordian-engine/fixmerkle/fmsha256"
	"github.com/stretchr/testify/require"
)

// NewSHA256Tree builds a SHA-256 tree from items,
// failing the test if construction fails.
func NewSHA256Tree[T fixmerkle.Hashable](t *testing.T, items []T) *fixmerkle.Tree[fmsha256.Hash] {
	t.Helper()

	tree, err := fixmerkle.NewTree(items, fixmerkle.TreeConfig[fmsha256.Hash]{
		Capacity:  fixmerkle.CapacityFor(len(items)),
		NewHasher: fmsha256.NewHasher,
	})
	require.NoError(t, err)
	return tree
}
