package bnk

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// genDecisionTree builds a random tree up to maxDepth; leaves at maxDepth.
func genDecisionTree(t *rapid.T, depth, maxDepth int) *DecisionTreeNode {
	node := &DecisionTreeNode{
		Key:         rapid.Uint32().Draw(t, "key"),
		Weight:      rapid.Uint16().Draw(t, "weight"),
		Probability: rapid.Uint16().Draw(t, "probability"),
	}

	if depth >= maxDepth || !rapid.Bool().Draw(t, "internal") {
		node.NodeID = rapid.Uint32().Draw(t, "node_id")
		return node
	}

	childCount := rapid.IntRange(1, 4).Draw(t, "child_count")
	node.Children = make([]*DecisionTreeNode, childCount)
	for i := range node.Children {
		node.Children[i] = genDecisionTree(t, depth+1, maxDepth)
	}
	return node
}

func TestRapidDecisionTreeFidelity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxDepth := rapid.IntRange(0, 4).Draw(t, "max_depth")
		root := genDecisionTree(t, 0, maxDepth)

		data := encodeDecisionTree(root)
		require.True(t, len(data)%12 == 0)

		got, err := decodeDecisionTree(data, maxDepth)
		require.NoError(t, err)
		assertTreeStructurallyEqual(t, root, got)
	})
}
