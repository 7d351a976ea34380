package bnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeNodeTree() *DecisionTreeNode {
	return &DecisionTreeNode{
		Children: []*DecisionTreeNode{
			{Key: 1, NodeID: 100},
			{Key: 2, NodeID: 200},
		},
	}
}

func TestDecisionTreeWorkedExample(t *testing.T) {
	root := threeNodeTree()
	data := encodeDecisionTree(root)
	require.Len(t, data, 36)

	got, err := decodeDecisionTree(data, 2)
	require.NoError(t, err)

	require.False(t, got.IsLeaf())
	require.Len(t, got.Children, 2)
	assert.Equal(t, uint32(1), got.Children[0].Key)
	assert.Equal(t, uint32(100), got.Children[0].NodeID)
	assert.Equal(t, uint32(2), got.Children[1].Key)
	assert.Equal(t, uint32(200), got.Children[1].NodeID)
}

func TestDecisionTreeRootFirstChildIndexAndCount(t *testing.T) {
	data := encodeDecisionTree(threeNodeTree())
	mid := uint32(data[4]) | uint32(data[5])<<8 | uint32(data[6])<<16 | uint32(data[7])<<24
	firstChildIndex := uint16(mid)
	childCount := uint16(mid >> 16)
	assert.Equal(t, uint16(1), firstChildIndex)
	assert.Equal(t, uint16(2), childCount)
}

func TestDecisionTreeFidelityRoundTrip(t *testing.T) {
	root := &DecisionTreeNode{
		Key: 9, Weight: 50, Probability: 100,
		Children: []*DecisionTreeNode{
			{Key: 1, NodeID: 10},
			{
				Key: 2, Weight: 1,
				Children: []*DecisionTreeNode{
					{Key: 3, NodeID: 30},
					{Key: 4, NodeID: 40},
				},
			},
		},
	}

	data := encodeDecisionTree(root)
	got, err := decodeDecisionTree(data, 3)
	require.NoError(t, err)

	assertTreeStructurallyEqual(t, root, got)

	// re-encode + re-decode again: fidelity holds under repeated round-trips.
	data2 := encodeDecisionTree(got)
	got2, err := decodeDecisionTree(data2, 3)
	require.NoError(t, err)
	assertTreeStructurallyEqual(t, root, got2)
}

func assertTreeStructurallyEqual(t *testing.T, want, got *DecisionTreeNode) {
	t.Helper()
	require.Equal(t, want.IsLeaf(), got.IsLeaf())
	assert.Equal(t, want.Key, got.Key)
	if want.IsLeaf() {
		assert.Equal(t, want.NodeID, got.NodeID)
		return
	}
	require.Len(t, got.Children, len(want.Children))
	for i := range want.Children {
		assertTreeStructurallyEqual(t, want.Children[i], got.Children[i])
	}
}

func TestDecisionTreeEmptyIsNil(t *testing.T) {
	got, err := decodeDecisionTree(nil, 0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecisionTreeLengthMismatch(t *testing.T) {
	_, err := decodeDecisionTree([]byte{1, 2, 3}, 1)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
