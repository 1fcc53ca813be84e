// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/fault"
)

// result of one build, also the JSON output format
type summary struct {
	Values    []int           `json:"values"`
	Count     int             `json:"count"`
	Height    int             `json:"height"`
	Inserts   int             `json:"inserts"`
	Rotations map[string]int  `json:"rotations"`
	Root      avl.Description `json:"root"`
}

// create the tree from the configuration, verifying it after each
// insertion so a broken tree is never displayed
func buildTree(configuration *Configuration, log *logger.L) (*avl.Tree, *logObserver, error) {
	if nil == configuration.Root {
		return nil, nil, fault.ErrMissingRootKey
	}

	observer := newLogObserver(log)

	tree := avl.New(*configuration.Root)
	tree.SetObserver(observer)

	log.Infof("root: %d  inserting: %d keys", *configuration.Root, len(configuration.Insert))

	for _, key := range configuration.Insert {
		if _, err := tree.Insert(key); nil != err {
			log.Errorf("insert: %d  error: %s", key, err)
			return nil, nil, err
		}
		if err := tree.Check(); nil != err {
			log.Criticalf("after insert: %d  inconsistent tree: %s", key, err)
			return nil, nil, err
		}
	}

	log.Infof("nodes: %d  height: %d  rotations: %d", tree.Count(), tree.Height(tree.Root()), observer.totalRotations())
	return tree, observer, nil
}

// collect the displayed values
func summarise(tree *avl.Tree, observer *logObserver) (*summary, error) {
	root, err := tree.DescribeRoot()
	if nil != err {
		return nil, err
	}

	rotations := make(map[string]int)
	for r, n := range observer.rotations {
		rotations[r.String()] = n
	}

	return &summary{
		Values:    tree.InOrder(),
		Count:     tree.Count(),
		Height:    tree.Height(tree.Root()),
		Inserts:   observer.inserts,
		Rotations: rotations,
		Root:      root,
	}, nil
}

// write the tree in the configured format
func report(w io.Writer, configuration *Configuration, tree *avl.Tree, observer *logObserver) error {
	s, err := summarise(tree, observer)
	if nil != err {
		return err
	}

	if configuration.JSON {
		b, err := json.MarshalIndent(s, "", "  ")
		if nil != err {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	for _, v := range s.Values {
		fmt.Fprintf(w, " %d |", v)
	}
	fmt.Fprintf(w, "\n\nRoot node height: %d\nRoot node balance: %d\n", s.Root.Height, s.Root.Balance)
	fmt.Fprintf(w, "\n%s", s.Root)

	if configuration.PrintShape {
		fmt.Fprintf(w, "\n")
		tree.Print(w, configuration.PrintDetails)
	}
	return nil
}

// build and display in one step
func run(w io.Writer, configuration *Configuration, log *logger.L) error {
	tree, observer, err := buildTree(configuration, log)
	if nil != err {
		return err
	}
	return report(w, configuration, tree, observer)
}
