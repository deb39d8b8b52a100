// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// StringItem - a key ordered by byte-wise string comparison
type StringItem string

// Compare - key comparison for AVL interface
func (s StringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringItem)))
}

// String - for printing
func (s StringItem) String() string {
	return string(s)
}

// IntItem - a key ordered numerically
type IntItem int64

// Compare - key comparison for AVL interface
func (i IntItem) Compare(x interface{}) int {
	j := x.(IntItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - for printing
func (i IntItem) String() string {
	return strconv.FormatInt(int64(i), 10)
}
