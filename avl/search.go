// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a node holding key, NoNode if absent
//
// with duplicate keys any one of the equal nodes may be returned
func (tree *Tree) Search(key int) NodeID {
	if tree.IsEmpty() {
		return NoNode
	}
	p := tree.root
	for NoNode != p {
		v := tree.nodes[p].value
		switch {
		case key < v:
			p = tree.nodes[p].left
		case key > v:
			p = tree.nodes[p].right
		default:
			return p
		}
	}
	return NoNode
}
