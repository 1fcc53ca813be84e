// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/balancedtree/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    root = 10,
    insert = { 20, 30, 40, 50 },
    print_shape = false,
    json = true,
    logging = {
        directory = "logs",
        file = "demo.log",
        size = 2048,
        count = 3,
        levels = {
            tree = "debug",
        },
    },
}
`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	if assert.NotNil(t, c.Root, "root") {
		assert.Equal(t, 10, *c.Root, "root")
	}
	assert.Equal(t, []int{20, 30, 40, 50}, c.Insert, "insert")
	assert.False(t, c.PrintShape, "print shape")
	assert.False(t, c.PrintDetails, "print details")
	assert.True(t, c.JSON, "json")

	dir := filepath.Join(filepath.Dir(fileName), "logs")
	assert.Equal(t, dir, c.Logging.Directory, "log directory")
	assert.Equal(t, "demo.log", c.Logging.File, "log file")
	assert.Equal(t, 2048, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "debug", c.Logging.Levels["tree"], "tree level")

	info, err := os.Stat(dir)
	if assert.Nil(t, err, "log directory not created") {
		assert.True(t, info.IsDir(), "log directory")
	}
}

func TestConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { root = -4 }`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, -4, *c.Root, "root")
	assert.Empty(t, c.Insert, "insert")
	assert.True(t, c.PrintShape, "print shape")
	assert.False(t, c.JSON, "json")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.Equal(t, defaultLogCount, c.Logging.Count, "log count")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "default level")
}

func TestConfigurationMissingRoot(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { insert = { 1, 2, 3 } }`)
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrMissingRootKey, err, "missing root")
}

func TestConfigurationFromArguments(t *testing.T) {
	c, err := configurationFromArguments([]string{"5", "3", "-4"})
	require.Nil(t, err, "arguments")
	assert.Equal(t, 5, *c.Root, "root")
	assert.Equal(t, []int{3, -4}, c.Insert, "insert")
	assert.True(t, c.PrintShape, "print shape")

	_, err = configurationFromArguments([]string{})
	assert.Equal(t, fault.ErrMissingRootKey, err, "no arguments")

	_, err = configurationFromArguments([]string{"5", "x"})
	assert.Equal(t, fault.ErrInvalidKey, err, "bad key")
}

func TestApplyFlags(t *testing.T) {
	c, err := configurationFromArguments([]string{"1"})
	require.Nil(t, err, "arguments")

	applyFlags(c, true, true)
	assert.True(t, c.JSON, "json")
	assert.True(t, c.Logging.Console, "console")
	assert.Equal(t, "debug", c.Logging.Levels[logger.DefaultTag], "default level")

	// the shared defaults must be untouched
	assert.Equal(t, "critical", defaultLogLevels[logger.DefaultTag], "defaults changed")
}
