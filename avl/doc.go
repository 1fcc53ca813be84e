// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys with parent
// links to allow upward traversal from any node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Hold the lock over the whole Insert call since the
//       rebalance rotations run inside it.
//
// Nodes live in an arena owned by the tree and are addressed by
// NodeID.  The left and right fields of a node own its children, the
// parent field is a plain back index used for finding the root and
// for rotation bookkeeping.  NodeID zero (NoNode) is reserved to mean
// an absent node.
//
// Keys that are not greater than a node's key descend to the left.
// Nodes are never removed.
package avl
