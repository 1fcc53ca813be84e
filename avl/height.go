// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Height - distance from a node to its farthest leaf
//
// an absent node has height -1 and a leaf has height 0
func (tree *Tree) Height(n NodeID) int {
	if !tree.exists(n) {
		return -1
	}
	return tree.nodes[n].height
}

// Balance - height of the left sub-tree minus height of the right
// sub-tree
//
// an absent node is balanced (0) so that empty sub-trees never
// trigger a rotation
func (tree *Tree) Balance(n NodeID) int {
	if !tree.exists(n) {
		return 0
	}
	p := tree.nodes[n]
	return tree.Height(p.left) - tree.Height(p.right)
}

// true if the node violates the AVL balance constraint
func (tree *Tree) isImbalanced(n NodeID) bool {
	b := tree.Balance(n)
	return b > 1 || b < -1
}

// internal: recompute the stored height of a node from its children,
// returns true if the value changed
func (tree *Tree) updateHeight(n NodeID) bool {
	p := &tree.nodes[n]
	h := tree.Height(p.left)
	if rh := tree.Height(p.right); rh > h {
		h = rh
	}
	h += 1
	if h == p.height {
		return false
	}
	p.height = h
	return true
}

// internal: refresh stored heights from a node up towards the root,
// stopping as soon as a height is unchanged
func (tree *Tree) updateHeightsFrom(n NodeID) {
	for ; NoNode != n; n = tree.nodes[n].parent {
		if !tree.updateHeight(n) {
			return
		}
	}
}
