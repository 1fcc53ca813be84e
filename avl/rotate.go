// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/balancedtree/fault"
)

// Rotation - the kind of restructuring applied at a pivot
type Rotation int

// rotation kinds
const (
	LeftRotation      Rotation = iota // right-right case
	RightRotation     Rotation = iota // left-left case
	LeftRightRotation Rotation = iota // left-right case
	RightLeftRotation Rotation = iota // right-left case
)

func (r Rotation) String() string {
	switch r {
	case LeftRotation:
		return "left"
	case RightRotation:
		return "right"
	case LeftRightRotation:
		return "left-right"
	case RightLeftRotation:
		return "right-left"
	default:
		return "unknown"
	}
}

// RotateRight - promote the pivot's left child into the pivot's place
//
//	      p            l
//	     / \          / \
//	    l   c   ->   a   p
//	   / \              / \
//	  a   b            b   c
func (tree *Tree) RotateRight(pivot NodeID) error {
	return tree.Rotate(RightRotation, pivot)
}

// RotateLeft - promote the pivot's right child into the pivot's place
//
//	    p                r
//	   / \              / \
//	  a   r     ->     p   c
//	     / \          / \
//	    b   c        a   b
func (tree *Tree) RotateLeft(pivot NodeID) error {
	return tree.Rotate(LeftRotation, pivot)
}

// RotateLeftRight - left rotation at the pivot's left child followed
// by a right rotation at the pivot
func (tree *Tree) RotateLeftRight(pivot NodeID) error {
	return tree.Rotate(LeftRightRotation, pivot)
}

// RotateRightLeft - right rotation at the pivot's right child followed
// by a left rotation at the pivot
func (tree *Tree) RotateRightLeft(pivot NodeID) error {
	return tree.Rotate(RightLeftRotation, pivot)
}

// Rotate - apply a rotation of the given kind at a pivot
//
// all preconditions are checked before any link is touched so a
// failed rotation leaves the tree unchanged
func (tree *Tree) Rotate(r Rotation, pivot NodeID) error {
	err := tree.canRotate(r, pivot)
	if nil != err {
		return err
	}

	value := tree.nodes[pivot].value

	switch r {
	case LeftRotation:
		tree.rotateLeft(pivot)
	case RightRotation:
		tree.rotateRight(pivot)
	case LeftRightRotation:
		tree.rotateLeft(tree.nodes[pivot].left)
		tree.rotateRight(pivot)
	case RightLeftRotation:
		tree.rotateRight(tree.nodes[pivot].right)
		tree.rotateLeft(pivot)
	}

	// the pivot now hangs below the promoted node
	top := tree.nodes[pivot].parent
	tree.updateHeightsFrom(tree.nodes[top].parent)

	if nil != tree.observer {
		tree.observer.Rotated(r, value)
	}
	return nil
}

// internal: validate the children a rotation will move
func (tree *Tree) canRotate(r Rotation, pivot NodeID) error {
	if tree.IsEmpty() {
		return fault.ErrUninitialisedTree
	}
	if !tree.exists(pivot) {
		return fault.ErrNodeNotFound
	}
	p := tree.nodes[pivot]

	switch r {
	case LeftRotation:
		if NoNode == p.right {
			return fault.ErrMissingRightChild
		}
	case RightRotation:
		if NoNode == p.left {
			return fault.ErrMissingLeftChild
		}
	case LeftRightRotation:
		if NoNode == p.left {
			return fault.ErrMissingLeftChild
		}
		if NoNode == tree.nodes[p.left].right {
			return fault.ErrMissingInnerGrandchild
		}
	case RightLeftRotation:
		if NoNode == p.right {
			return fault.ErrMissingRightChild
		}
		if NoNode == tree.nodes[p.right].left {
			return fault.ErrMissingInnerGrandchild
		}
	default:
		return fault.ErrInvalidRotation
	}
	return nil
}

// internal: single right rotation, pivot must have a left child
func (tree *Tree) rotateRight(pivot NodeID) {
	up := tree.nodes[pivot].parent
	promoted := tree.nodes[pivot].left
	inner := tree.nodes[promoted].right

	// the inner sub-tree sorts between promoted and pivot
	tree.nodes[pivot].left = inner
	if NoNode != inner {
		tree.nodes[inner].parent = pivot
	}

	tree.nodes[promoted].right = pivot
	tree.nodes[pivot].parent = promoted

	tree.updateHeight(pivot)
	tree.updateHeight(promoted)

	tree.replaceChild(up, pivot, promoted)
}

// internal: single left rotation, pivot must have a right child
func (tree *Tree) rotateLeft(pivot NodeID) {
	up := tree.nodes[pivot].parent
	promoted := tree.nodes[pivot].right
	inner := tree.nodes[promoted].left

	tree.nodes[pivot].right = inner
	if NoNode != inner {
		tree.nodes[inner].parent = pivot
	}

	tree.nodes[promoted].left = pivot
	tree.nodes[pivot].parent = promoted

	tree.updateHeight(pivot)
	tree.updateHeight(promoted)

	tree.replaceChild(up, pivot, promoted)
}

// internal: make promoted take the place of old below up, or become
// the root when up is absent
func (tree *Tree) replaceChild(up NodeID, old NodeID, promoted NodeID) {
	tree.nodes[promoted].parent = up
	switch {
	case NoNode == up:
		tree.root = promoted
	case old == tree.nodes[up].left:
		tree.nodes[up].left = promoted
	default:
		tree.nodes[up].right = promoted
	}
}
