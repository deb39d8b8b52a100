// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - scripted access to an AVL tree
//
// A script has one operation per line:
//
//   insert KEY VALUE…   - add or overwrite (value is the rest of the line)
//   delete KEY          - remove if present
//   find KEY            - print value or "absent"
//   get KEY             - print value, fail if absent
//   count               - number of items
//   height              - number of levels
//   list                - all items in key order
//   print               - ASCII picture of the tree
//   check               - verify tree invariants, fail if broken
//   equal-paths TOKEN…  - leaf depth check of a level-order tree
//
// blank lines and lines starting with '#' are ignored.
package operation
