// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - write an ASCII graphic representation of the tree, right
// sub-trees above and left sub-trees below their parent
//
// returns the number of levels printed
func (tree *Tree) Print(w io.Writer, details bool) int {
	if tree.IsEmpty() {
		return 0
	}
	return tree.printTree(w, tree.root, "", rootBranch, details)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree) printTree(w io.Writer, n NodeID, prefix string, br branch, details bool) int {
	if NoNode == n {
		return 0
	}
	p := tree.nodes[n]

	rd := 0
	ld := 0
	if NoNode != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, rightBranch, details)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if NoNode != p.parent {
		up = fmt.Sprintf("%d", tree.nodes[p.parent].value)
	}
	if details {
		fmt.Fprintf(w, "%d ^%s %+2d/h%d\n", p.value, up, tree.Balance(n), tree.Height(n))
	} else {
		fmt.Fprintf(w, "%d ^%s\n", p.value, up)
	}
	if NoNode != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, leftBranch, details)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
