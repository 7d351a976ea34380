package bnk

import (
	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// DecisionTreeNode is one node of the breadth-first decision tree used by
// music-switch and dialogue-event objects to select a leaf audio target
// from runtime switch/state values.
//
// A node is a leaf iff Children is empty, in which case NodeID holds the
// selected audio target. An internal node's Children are walked in the
// order they were decoded/constructed. The wire record's first-child index
// and child count are not stored on the node; encode recomputes them from
// Children.
type DecisionTreeNode struct {
	Key         uint32
	Weight      uint16
	Probability uint16
	NodeID      uint32 // valid only when len(Children) == 0

	Children []*DecisionTreeNode
}

// IsLeaf reports whether n has no children.
func (n *DecisionTreeNode) IsLeaf() bool { return len(n.Children) == 0 }

type decisionTreeRecord struct {
	key         uint32
	mid         uint32
	weight      uint16
	probability uint16
}

// decodeDecisionTree parses a flat, breadth-first array of 12-byte node
// records. treeDepth is the enclosing object's declared maximum depth,
// used by the leaf/internal heuristic alongside the implied node count
// (len(data)/12). An empty data slice yields a nil tree.
func decodeDecisionTree(data []byte, treeDepth int) (*DecisionTreeNode, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%12 != 0 {
		return nil, lengthMismatch("DecisionTree", len(data)/12*12, len(data))
	}

	nodeCount := len(data) / 12
	records := make([]decisionTreeRecord, nodeCount)
	c := bitio.NewCursor(data)
	for i := range records {
		key, err := c.U32()
		if err != nil {
			return nil, truncated("DecisionTreeNode.key")
		}
		mid, err := c.U32()
		if err != nil {
			return nil, truncated("DecisionTreeNode.node_id_or_children")
		}
		weight, err := c.U16()
		if err != nil {
			return nil, truncated("DecisionTreeNode.weight")
		}
		probability, err := c.U16()
		if err != nil {
			return nil, truncated("DecisionTreeNode.probability")
		}
		records[i] = decisionTreeRecord{key: key, mid: mid, weight: weight, probability: probability}
	}

	var build func(idx, depth int) *DecisionTreeNode
	build = func(idx, depth int) *DecisionTreeNode {
		rec := records[idx]
		firstChild := int(uint16(rec.mid))
		childCount := int(uint16(rec.mid >> 16))

		isLeaf := depth == treeDepth || childCount == 0 || firstChild >= nodeCount || childCount > nodeCount || firstChild+childCount > nodeCount
		node := &DecisionTreeNode{Key: rec.key, Weight: rec.weight, Probability: rec.probability}
		if isLeaf {
			node.NodeID = rec.mid
			return node
		}

		node.Children = make([]*DecisionTreeNode, childCount)
		for i := 0; i < childCount; i++ {
			node.Children[i] = build(firstChild+i, depth+1)
		}
		return node
	}

	return build(0, 0), nil
}

// encodeDecisionTree serializes root via a queue-driven breadth-first walk:
// the root occupies record 0, and each internal node's FirstChildIndex is
// the next free slot at the time it is visited. The result is exactly
// node_count*12 bytes.
func encodeDecisionTree(root *DecisionTreeNode) []byte {
	if root == nil {
		return nil
	}

	queue := []*DecisionTreeNode{root}
	records := make([]decisionTreeRecord, 1)
	nextChildIndex := uint32(1)

	for i := 0; i < len(queue); i++ {
		node := queue[i]
		if node.IsLeaf() {
			records[i] = decisionTreeRecord{key: node.Key, mid: node.NodeID, weight: node.Weight, probability: node.Probability}
			continue
		}

		fci := nextChildIndex
		cc := uint32(len(node.Children))
		records[i] = decisionTreeRecord{
			key:         node.Key,
			mid:         fci | (cc << 16),
			weight:      node.Weight,
			probability: node.Probability,
		}
		nextChildIndex += cc

		for _, child := range node.Children {
			queue = append(queue, child)
			records = append(records, decisionTreeRecord{})
		}
	}

	w := bitio.NewWriter()
	for _, r := range records {
		w.PutU32(r.key)
		w.PutU32(r.mid)
		w.PutU16(r.weight)
		w.PutU16(r.probability)
	}
	return w.Bytes()
}

// decisionTreeNodeCount returns the number of nodes in the tree rooted at n
// (0 for a nil tree).
func decisionTreeNodeCount(n *DecisionTreeNode) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Children {
		count += decisionTreeNodeCount(child)
	}
	return count
}
