// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Walk - call f with each value in ascending order, stop early if f
// returns false
func (tree *Tree) Walk(f func(value int) bool) {
	if tree.IsEmpty() {
		return
	}
	tree.walk(tree.root, f)
}

// internal: left, self, right
func (tree *Tree) walk(n NodeID, f func(value int) bool) bool {
	if NoNode == n {
		return true
	}
	p := tree.nodes[n]
	if !tree.walk(p.left, f) {
		return false
	}
	if !f(p.value) {
		return false
	}
	return tree.walk(p.right, f)
}

// InOrder - all values in ascending order
func (tree *Tree) InOrder() []int {
	values := make([]int, 0, tree.Count())
	tree.Walk(func(value int) bool {
		values = append(values, value)
		return true
	})
	return values
}
