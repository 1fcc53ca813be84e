// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/balancedtree/fault"
)

// watches the directory holding the configuration file, editors
// often replace the file instead of writing it in place
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// start delivering events, stops when shutdown is closed
func (w *fileWatcher) Start(shutdown <-chan struct{}) error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		defer w.watcher.Close()
	loop:
		for {
			select {
			case <-shutdown:
				break loop

			case event, ok := <-w.watcher.Events:
				if !ok {
					break loop
				}
				if filepath.Clean(event.Name) != w.filePath {
					continue loop
				}
				w.log.Debugf("file event: %v", event)

				if isChmodOnly(event) {
					continue loop
				}

				if isRemove(event) {
					if _, err := os.Stat(w.filePath); os.IsNotExist(err) {
						w.log.Warnf("file: %q removed", w.filePath)
						notify(w.remove)
						break loop
					}
					// replaced by a rename, treat as a change
				}
				notify(w.change)

			case err, ok := <-w.watcher.Errors:
				if !ok {
					break loop
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()
	return nil
}

// run f for every change until the file is removed or shutdown
func (w *fileWatcher) Run(shutdown <-chan struct{}, f func() error) error {
	for {
		select {
		case <-shutdown:
			return nil
		case <-w.remove:
			return fault.ErrConfigurationFileRemoved
		case <-w.change:
			if err := f(); nil != err {
				w.log.Errorf("refresh error: %s", err)
			}
		}
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename
}

// attribute changes leave the content as it was
func isChmodOnly(event fsnotify.Event) bool {
	return fsnotify.Chmod == event.Op
}

// non-blocking send, one pending event is enough
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
