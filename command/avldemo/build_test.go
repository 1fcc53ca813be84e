// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/balancedtree/avl"
	"github.com/bitmark-inc/balancedtree/fault"
)

func TestRunText(t *testing.T) {
	c, err := configurationFromArguments([]string{"3", "4", "5"})
	require.Nil(t, err, "arguments")

	buffer := &bytes.Buffer{}
	err = run(buffer, c, logger.New(logCategory))
	require.Nil(t, err, "run")

	expected := "" +
		" 3 | 4 | 5 |\n" +
		"\n" +
		"Root node height: 1\n" +
		"Root node balance: 0\n" +
		"\n" +
		"Value: 4\n" +
		"Height: 1\n" +
		"Balance: 0\n" +
		"Left: 3\n" +
		"Right: 5\n" +
		"Parent: Root\n" +
		"\n" +
		"       /------+ 5 ^4\n" +
		"|------+ 4 ^-\n" +
		"       \\------+ 3 ^4\n"
	assert.Equal(t, expected, buffer.String(), "output")
}

func TestRunJSON(t *testing.T) {
	c, err := configurationFromArguments([]string{"10", "20", "30", "40", "50"})
	require.Nil(t, err, "arguments")
	c.JSON = true

	buffer := &bytes.Buffer{}
	err = run(buffer, c, logger.New(logCategory))
	require.Nil(t, err, "run")

	s := summary{}
	err = json.Unmarshal(buffer.Bytes(), &s)
	require.Nil(t, err, "json")

	assert.Equal(t, []int{10, 20, 30, 40, 50}, s.Values, "values")
	assert.Equal(t, 5, s.Count, "count")
	assert.Equal(t, 2, s.Height, "height")
	assert.Equal(t, 4, s.Inserts, "inserts")
	assert.Equal(t, map[string]int{"left": 2}, s.Rotations, "rotations")
	assert.Equal(t, 20, s.Root.Value, "root")
	assert.True(t, s.Root.IsRoot(), "root parent")
}

func TestBuildDoubleRotation(t *testing.T) {
	c, err := configurationFromArguments([]string{"5", "3", "4"})
	require.Nil(t, err, "arguments")

	tree, observer, err := buildTree(c, logger.New(logCategory))
	require.Nil(t, err, "build")

	assert.Equal(t, []int{3, 4, 5}, tree.InOrder(), "values")
	assert.Equal(t, 1, observer.rotations[avl.LeftRightRotation], "left-right rotations")
	assert.Equal(t, 1, observer.totalRotations(), "total rotations")
	assert.Equal(t, 2, observer.inserts, "inserts")

	d, err := tree.DescribeRoot()
	require.Nil(t, err, "describe")
	assert.Equal(t, 4, d.Value, "root")
}

func TestBuildMissingRoot(t *testing.T) {
	c := defaultConfiguration(defaultLogDirectory)
	_, _, err := buildTree(c, logger.New(logCategory))
	assert.Equal(t, fault.ErrMissingRootKey, err, "missing root")

	buffer := &bytes.Buffer{}
	err = run(buffer, c, logger.New(logCategory))
	assert.Equal(t, fault.ErrMissingRootKey, err, "missing root")
	assert.Equal(t, 0, buffer.Len(), "output written for a failed build")
}

func TestRunFromFile(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local keys = {}
for i = 2, 7 do
    keys[#keys + 1] = i
end
return {
    root = 1,
    insert = keys,
    print_shape = true,
    print_details = true,
}
`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	buffer := &bytes.Buffer{}
	err = run(buffer, c, logger.New(logCategory))
	require.Nil(t, err, "run")
	assert.Contains(t, buffer.String(), " 1 | 2 | 3 | 4 | 5 | 6 | 7 |\n", "values")
	assert.Contains(t, buffer.String(), "|------+ 4 ^- +0/h2\n", "root line")
}
