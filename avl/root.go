// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// FindRoot - follow parent links upward from any node until the
// parentless node is reached
func (tree *Tree) FindRoot(n NodeID) NodeID {
	if !tree.exists(n) {
		return NoNode
	}
	for NoNode != tree.nodes[n].parent {
		n = tree.nodes[n].parent
	}
	return n
}

// FindLowestImbalanced - descend from a node through any child that
// is itself imbalanced and return the last node reached
func (tree *Tree) FindLowestImbalanced(n NodeID) NodeID {
	if !tree.exists(n) {
		return NoNode
	}
	p := tree.nodes[n]
	if NoNode != p.left && tree.isImbalanced(p.left) {
		return tree.FindLowestImbalanced(p.left)
	}
	if NoNode != p.right && tree.isImbalanced(p.right) {
		return tree.FindLowestImbalanced(p.right)
	}
	return n
}
