// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Each instance
// belongs to a class (invalid, not found, precondition, process) that
// can be tested with the IsErrX functions.
//
// A PreconditionError means the operation refused to run and nothing
// was modified.
package fault
