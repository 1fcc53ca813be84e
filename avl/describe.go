// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/balancedtree/fault"
)

// Description - diagnostic snapshot of a single node
type Description struct {
	Value   int  `json:"value"`
	Height  int  `json:"height"`
	Balance int  `json:"balance"`
	Left    *int `json:"left,omitempty"`
	Right   *int `json:"right,omitempty"`
	Parent  *int `json:"parent,omitempty"` // nil for the root
}

// Describe - snapshot a node and the values of its neighbours
func (tree *Tree) Describe(n NodeID) (Description, error) {
	if tree.IsEmpty() {
		return Description{}, fault.ErrUninitialisedTree
	}
	if !tree.exists(n) {
		return Description{}, fault.ErrNodeNotFound
	}
	p := tree.nodes[n]
	return Description{
		Value:   p.value,
		Height:  tree.Height(n),
		Balance: tree.Balance(n),
		Left:    tree.valueOf(p.left),
		Right:   tree.valueOf(p.right),
		Parent:  tree.valueOf(p.parent),
	}, nil
}

// DescribeRoot - snapshot of the root node
func (tree *Tree) DescribeRoot() (Description, error) {
	return tree.Describe(tree.Root())
}

// IsRoot - true if the described node had no parent
func (d Description) IsRoot() bool {
	return nil == d.Parent
}

func (d Description) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "Value: %d\n", d.Value)
	fmt.Fprintf(&s, "Height: %d\n", d.Height)
	fmt.Fprintf(&s, "Balance: %d\n", d.Balance)
	if nil != d.Left {
		fmt.Fprintf(&s, "Left: %d\n", *d.Left)
	}
	if nil != d.Right {
		fmt.Fprintf(&s, "Right: %d\n", *d.Right)
	}
	if nil != d.Parent {
		fmt.Fprintf(&s, "Parent: %d\n", *d.Parent)
	} else {
		s.WriteString("Parent: Root\n")
	}
	return s.String()
}

// internal: copy of a neighbour's value, nil if absent
func (tree *Tree) valueOf(n NodeID) *int {
	if NoNode == n {
		return nil
	}
	v := tree.nodes[n].value
	return &v
}
