// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type PreconditionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigurationFileRemoved = ProcessError("configuration file removed")
	ErrConfigurationNotTable    = InvalidError("configuration did not return a table")
	ErrHeightMismatch           = ProcessError("height mismatch")
	ErrInvalidKey               = InvalidError("invalid key")
	ErrInvalidRotation          = InvalidError("invalid rotation")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrLinkCycle                = ProcessError("link cycle")
	ErrMissingInnerGrandchild   = PreconditionError("missing inner grandchild")
	ErrMissingLeftChild         = PreconditionError("missing left child")
	ErrMissingRightChild        = PreconditionError("missing right child")
	ErrMissingRootKey           = InvalidError("missing root key")
	ErrNodeNotFound             = NotFoundError("node not found")
	ErrOrderViolation           = ProcessError("order violation")
	ErrParentLinkMismatch       = ProcessError("parent link mismatch")
	ErrRootHasParent            = ProcessError("root has parent")
	ErrUnbalancedNode           = ProcessError("unbalanced node")
	ErrUninitialisedTree        = PreconditionError("uninitialised tree")
	ErrUnreachableNode          = ProcessError("unreachable node")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e PreconditionError) Error() string { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrPrecondition(e error) bool { _, ok := e.(PreconditionError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
