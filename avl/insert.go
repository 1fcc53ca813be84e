// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/fault"
)

// Insert - add a new node holding key and rebalance the tree
//
// returns the index of the new node
func (tree *Tree) Insert(key int) (NodeID, error) {
	if tree.IsEmpty() {
		return NoNode, fault.ErrUninitialisedTree
	}
	return tree.insert(tree.root, key), nil
}

// InsertFrom - add a new node holding key using any node of the tree
// as the handle, the descent always starts at that node's root
func (tree *Tree) InsertFrom(n NodeID, key int) (NodeID, error) {
	if tree.IsEmpty() {
		return NoNode, fault.ErrUninitialisedTree
	}
	if !tree.exists(n) {
		return NoNode, fault.ErrNodeNotFound
	}
	return tree.insert(tree.FindRoot(n), key), nil
}

// internal routine for insert
func (tree *Tree) insert(root NodeID, key int) NodeID {
	created := tree.newNode(key)

	p := root
descend:
	for {
		if key > tree.nodes[p].value {
			if NoNode == tree.nodes[p].right {
				tree.nodes[p].right = created
				break descend
			}
			p = tree.nodes[p].right
		} else {
			if NoNode == tree.nodes[p].left {
				tree.nodes[p].left = created
				break descend
			}
			p = tree.nodes[p].left
		}
	}
	tree.nodes[created].parent = p

	if nil != tree.observer {
		tree.observer.Inserted(key)
	}

	tree.rebalance(created)
	return created
}

// internal: restore the balance constraint after attaching a node
//
// stored heights are refreshed on the way up; the first imbalanced
// node met is the deepest one and a single or double rotation there
// returns its sub-tree to the height it had before the insertion, so
// nothing above needs to change
func (tree *Tree) rebalance(created NodeID) {
	for p := tree.nodes[created].parent; NoNode != p; p = tree.nodes[p].parent {
		changed := tree.updateHeight(p)
		if tree.isImbalanced(p) {
			r := tree.selectRotation(p)
			err := tree.Rotate(r, p)
			if nil != err {
				logger.Panicf("avl: %s rotation at: %d  error: %s", r, tree.nodes[p].value, err)
			}
			return
		}
		if !changed {
			return
		}
	}
}

// internal: choose the rotation that fixes an imbalanced pivot
func (tree *Tree) selectRotation(pivot NodeID) Rotation {
	p := tree.nodes[pivot]
	if tree.Balance(pivot) < -1 {
		// right heavy
		if tree.Balance(p.right) <= 0 {
			return LeftRotation
		}
		return RightLeftRotation
	}
	// left heavy
	if tree.Balance(p.left) >= 0 {
		return RightRotation
	}
	return LeftRightRotation
}
