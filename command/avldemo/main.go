// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--json] ROOT [KEY…]\n"+
			"       %s [--help] [--verbose] [--json] [--watch] --config-file=FILE", program, program)
	}

	configurationFile := ""
	var theConfiguration *Configuration
	switch len(options["config-file"]) {
	case 0:
		theConfiguration, err = configurationFromArguments(arguments)
		if nil != err {
			exitwithstatus.Message("%s: invalid arguments: %q  error: %s", program, arguments, err)
		}
	case 1:
		if 0 != len(arguments) {
			exitwithstatus.Message("%s: keys cannot be combined with a config-file", program)
		}
		configurationFile = options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	watch := len(options["watch"]) > 0
	if watch && "" == configurationFile {
		exitwithstatus.Message("%s: watch requires a config-file", program)
	}

	applyFlags(theConfiguration, len(options["json"]) > 0, len(options["verbose"]) > 0)

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	treeLog := logger.New("tree")

	// halt before printing anything if the tree cannot be built
	if err := run(os.Stdout, theConfiguration, treeLog); nil != err {
		log.Criticalf("build error: %s", err)
		exitwithstatus.Message("%s: build error: %s", program, err)
	}

	if !watch {
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New("watcher"))
	if nil != err {
		exitwithstatus.Message("%s: watch error: %s", program, err)
	}

	shutdown := make(chan struct{})
	if err := watcher.Start(shutdown); nil != err {
		exitwithstatus.Message("%s: watch error: %s", program, err)
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		log.Infof("received signal: %v", sig)
		close(shutdown)
	}()

	// each change rebuilds from a fresh read of the file
	err = watcher.Run(shutdown, func() error {
		c, err := getConfiguration(configurationFile)
		if nil != err {
			return err
		}
		applyFlags(c, theConfiguration.JSON, false)
		fmt.Printf("\n--- %s ---\n", configurationFile)
		return run(os.Stdout, c, treeLog)
	})
	if nil != err {
		log.Warnf("watch ended: %s", err)
	}
}

// command-line flags override the configuration
func applyFlags(configuration *Configuration, jsonOutput bool, verbose bool) {
	if jsonOutput {
		configuration.JSON = true
	}
	if verbose {
		configuration.Logging.Console = true
		if nil == configuration.Logging.Levels {
			configuration.Logging.Levels = make(map[string]string)
		}
		configuration.Logging.Levels[logger.DefaultTag] = "debug"
	}
}
