// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Observer - receives structural events from a tree
//
// calls are made synchronously from inside Insert and Rotate, after
// the change is complete; an observer must not modify the tree
type Observer interface {
	Inserted(value int)
	Rotated(r Rotation, pivot int)
}

//go:generate mockgen -source=observer.go -destination=mocks/observer.go -package=mocks
