// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/balancedtree/avl"
)

// logs tree events and keeps simple counts for the summary
type logObserver struct {
	log       *logger.L
	inserts   int
	rotations map[avl.Rotation]int
}

func newLogObserver(log *logger.L) *logObserver {
	return &logObserver{
		log:       log,
		rotations: make(map[avl.Rotation]int),
	}
}

func (o *logObserver) Inserted(value int) {
	o.inserts += 1
	o.log.Debugf("inserted: %d", value)
}

func (o *logObserver) Rotated(r avl.Rotation, pivot int) {
	o.rotations[r] += 1
	o.log.Infof("%s rotation at: %d", r, pivot)
}

// total rotations of all kinds
func (o *logObserver) totalRotations() int {
	n := 0
	for _, count := range o.rotations {
		n += count
	}
	return n
}
