// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/balancedtree/fault"
)

// CheckUp - check the parent links, the root, the stored heights and
// the ordering for consistency; balance is not considered
func (tree *Tree) CheckUp() error {
	_, err := tree.checkStructure(false)
	return err
}

// Check - full consistency check: everything CheckUp does plus the
// balance constraint at every node
func (tree *Tree) Check() error {
	_, err := tree.checkStructure(true)
	return err
}

// internal: shared checker, returns the tree height
func (tree *Tree) checkStructure(balanced bool) (int, error) {
	if tree.IsEmpty() {
		return -1, fault.ErrUninitialisedTree
	}
	if !tree.exists(tree.root) {
		return -1, fault.ErrNodeNotFound
	}
	if NoNode != tree.nodes[tree.root].parent {
		return -1, fault.ErrRootHasParent
	}

	c := checker{
		tree:     tree,
		balanced: balanced,
		limit:    tree.Count(),
	}
	h, err := c.check(tree.root, NoNode)
	if nil != err {
		return -1, err
	}
	if c.seen != tree.Count() {
		return -1, fault.ErrUnreachableNode
	}
	return h, nil
}

// state for one pass of the checker
type checker struct {
	tree     *Tree
	balanced bool
	limit    int  // a reachable count above this means a cycle
	seen     int  // nodes visited so far
	started  bool // previous is valid
	previous int  // last value seen in order
}

// internal: consistency checker, in-order so values can be compared
// against their predecessor, returns the sub-tree height
func (c *checker) check(n NodeID, up NodeID) (int, error) {
	if NoNode == n {
		return -1, nil
	}
	if !c.tree.exists(n) {
		return -1, fault.ErrNodeNotFound
	}
	c.seen += 1
	if c.seen > c.limit {
		return -1, fault.ErrLinkCycle
	}

	p := c.tree.nodes[n]
	if p.parent != up {
		return -1, fault.ErrParentLinkMismatch
	}
	if NoNode != p.left && p.left == p.right {
		return -1, fault.ErrLinkCycle
	}

	lh, err := c.check(p.left, n)
	if nil != err {
		return -1, err
	}

	if c.started && p.value < c.previous {
		return -1, fault.ErrOrderViolation
	}
	c.started = true
	c.previous = p.value

	rh, err := c.check(p.right, n)
	if nil != err {
		return -1, err
	}

	h := 1 + rh
	if lh > rh {
		h = 1 + lh
	}
	if h != p.height {
		return -1, fault.ErrHeightMismatch
	}
	if c.balanced && (lh-rh > 1 || rh-lh > 1) {
		return -1, fault.ErrUnbalancedNode
	}
	return h, nil
}
