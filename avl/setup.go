// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the node arena and the root of a tree
type Tree struct {
	nodes    []node
	root     NodeID
	observer Observer
}

// New - create a tree holding a single root node
func New(key int) *Tree {
	tree := &Tree{}
	tree.root = tree.newNode(key)
	return tree
}

// IsEmpty - true if the tree has no root, i.e. a zero Tree value
func (tree *Tree) IsEmpty() bool {
	return nil == tree || NoNode == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	if nil == tree || 0 == len(tree.nodes) {
		return 0
	}
	return len(tree.nodes) - 1
}

// Root - return the root node of the tree
func (tree *Tree) Root() NodeID {
	if nil == tree {
		return NoNode
	}
	return tree.root
}

// Value - read the key from a node
func (tree *Tree) Value(n NodeID) (int, bool) {
	if !tree.exists(n) {
		return 0, false
	}
	return tree.nodes[n].value, true
}

// Left - return left child of a node
func (tree *Tree) Left(n NodeID) NodeID {
	if !tree.exists(n) {
		return NoNode
	}
	return tree.nodes[n].left
}

// Right - return right child of a node
func (tree *Tree) Right(n NodeID) NodeID {
	if !tree.exists(n) {
		return NoNode
	}
	return tree.nodes[n].right
}

// Parent - return parent node of a node
func (tree *Tree) Parent(n NodeID) NodeID {
	if !tree.exists(n) {
		return NoNode
	}
	return tree.nodes[n].parent
}

// Depth - get the depth of a node, the root is at depth zero
func (tree *Tree) Depth(n NodeID) int {
	if !tree.exists(n) {
		return -1
	}
	count := 0
	for p := tree.nodes[n].parent; NoNode != p; p = tree.nodes[p].parent {
		count += 1
	}
	return count
}

// SetObserver - install a callback receiver for insertions and
// rotations, nil removes it
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}
