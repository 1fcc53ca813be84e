// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/configuration"
	"github.com/bitmark-inc/balancedtree/fault"
)

// basic defaults (directories and files are relative to the directory
// holding the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avldemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - the tree to build and how to display it
type Configuration struct {
	Root         *int                 `gluamapper:"root" json:"root"`
	Insert       []int                `gluamapper:"insert" json:"insert"`
	PrintShape   bool                 `gluamapper:"print_shape" json:"print_shape"`
	PrintDetails bool                 `gluamapper:"print_details" json:"print_details"`
	JSON         bool                 `gluamapper:"json" json:"json"`
	Logging      logger.Configuration `gluamapper:"logging" json:"logging"`
}

// configuration used when nothing is read from a file
func defaultConfiguration(logDirectory string) *Configuration {
	return &Configuration{
		PrintShape: true,
		Logging: logger.Configuration{
			Directory: logDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    copyLevels(defaultLogLevels),
		},
	}
}

// the parser and the verbose flag both write into the levels map
func copyLevels(levels LoglevelMap) LoglevelMap {
	m := make(LoglevelMap, len(levels))
	for tag, level := range levels {
		m[tag] = level
	}
	return m
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultLogDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if nil == options.Root {
		return nil, fault.ErrMissingRootKey
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	// make absolute and create directories if they do not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// build a configuration from command-line keys: ROOT [KEY…]
func configurationFromArguments(arguments []string) (*Configuration, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingRootKey
	}

	keys := make([]int, 0, len(arguments))
	for _, a := range arguments {
		k, err := strconv.Atoi(a)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, k)
	}

	options := defaultConfiguration(os.TempDir())
	options.Root = &keys[0]
	options.Insert = keys[1:]

	return options, nil
}
