// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/logger"
)

// NodeID - index of a node in the tree's arena
type NodeID uint32

// NoNode - the reserved index for an absent node
const NoNode NodeID = 0

// a node in the arena
type node struct {
	left   NodeID // left sub-tree
	right  NodeID // right sub-tree
	parent NodeID // points to parent node
	value  int    // key used for ordering
	height int    // of the sub-tree rooted here, a leaf is zero
}

// allocate a new detached node at the end of the arena
//
// index zero is reserved so the first allocation also creates the
// placeholder slot
func (tree *Tree) newNode(value int) NodeID {
	if 0 == len(tree.nodes) {
		tree.nodes = append(tree.nodes, node{})
	}
	if uint64(len(tree.nodes)) >= math.MaxUint32 {
		logger.Panicf("avl: node arena exhausted at: %d nodes", len(tree.nodes))
	}
	tree.nodes = append(tree.nodes, node{
		value: value,
	})
	return NodeID(len(tree.nodes) - 1)
}

// true if the index refers to an allocated node
func (tree *Tree) exists(n NodeID) bool {
	return nil != tree && NoNode != n && int(n) < len(tree.nodes)
}
