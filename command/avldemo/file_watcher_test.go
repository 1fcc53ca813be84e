// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/balancedtree/fault"
)

const watchTimeout = 5 * time.Second

func TestWatcherChange(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { root = 1 }`)
	defer cleanup()

	w, err := newFileWatcher(fileName, logger.New(logCategory))
	require.Nil(t, err, "new watcher")

	shutdown := make(chan struct{})
	err = w.Start(shutdown)
	require.Nil(t, err, "start")

	once := sync.Once{}
	stop := func() { once.Do(func() { close(shutdown) }) }
	defer stop()

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- w.Run(shutdown, func() error {
			calls += 1
			stop()
			return nil
		})
	}()

	err = ioutil.WriteFile(fileName, []byte(`return { root = 2 }`), 0600)
	require.Nil(t, err, "rewrite")

	select {
	case err := <-done:
		assert.Nil(t, err, "run")
		assert.True(t, calls >= 1, "refresh not called")
	case <-time.After(watchTimeout):
		t.Fatal("timeout waiting for change")
	}
}

func TestWatcherRemove(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { root = 1 }`)
	defer cleanup()

	w, err := newFileWatcher(fileName, logger.New(logCategory))
	require.Nil(t, err, "new watcher")

	shutdown := make(chan struct{})
	defer close(shutdown)
	err = w.Start(shutdown)
	require.Nil(t, err, "start")

	done := make(chan error, 1)
	go func() {
		done <- w.Run(shutdown, func() error { return nil })
	}()

	err = os.Remove(fileName)
	require.Nil(t, err, "remove")

	select {
	case err := <-done:
		assert.Equal(t, fault.ErrConfigurationFileRemoved, err, "run")
	case <-time.After(watchTimeout):
		t.Fatal("timeout waiting for removal")
	}
}

func TestWatcherIgnoresChmod(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { root = 1 }`)
	defer cleanup()

	w, err := newFileWatcher(fileName, logger.New(logCategory))
	require.Nil(t, err, "new watcher")

	shutdown := make(chan struct{})
	defer close(shutdown)
	err = w.Start(shutdown)
	require.Nil(t, err, "start")

	err = os.Chmod(fileName, 0400)
	require.Nil(t, err, "chmod")

	select {
	case <-w.change:
		t.Fatal("permission change signalled a rebuild")
	case <-time.After(500 * time.Millisecond):
	}

	err = os.Chmod(fileName, 0600)
	require.Nil(t, err, "chmod")
	err = ioutil.WriteFile(fileName, []byte(`return { root = 2 }`), 0600)
	require.Nil(t, err, "rewrite")

	select {
	case <-w.change:
	case <-time.After(watchTimeout):
		t.Fatal("timeout waiting for change")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher("/no/such/directory/avldemo.conf", logger.New(logCategory))
	assert.True(t, os.IsNotExist(err), "expected not exist: %v", err)
}
