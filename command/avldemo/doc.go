// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avldemo - build a balanced tree and display it
//
// Usage:
//
//   avldemo [--json] [--verbose] ROOT [KEY…]
//   avldemo [--json] [--verbose] [--watch] --config-file=FILE
//
// The keys are inserted in order after ROOT; the in-order values,
// the root node description and the tree shape are then printed.
//
// A configuration file is a Lua script returning a table:
//
//   return {
//       root = 10,
//       insert = { 20, 30, 40, 50 },
//       print_shape = true,
//       print_details = false,
//       json = false,
//       logging = {
//           directory = "log",
//           file = "avldemo.log",
//           size = 1048576,
//           count = 10,
//           console = false,
//           levels = {
//               DEFAULT = "info",
//           },
//       },
//   }
//
// With --watch the file is re-read and the tree rebuilt each time it
// is written.
package main
